// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/ls8/config"
	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ls8: ")

	if err := rootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ls8",
		Short:         "LS8 8-bit virtual CPU",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(runCommand(), asmCommand(), inspectCommand())

	return rootCmd
}

// loadProgram reads a program from a .ls8 file, or assembles it when
// assemble is set or the file has an .asm extension.
func loadProgram(path string, assemble bool, defines map[string]string) (prog *cpu.Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	if assemble || strings.EqualFold(filepath.Ext(path), ".asm") {
		asm := &cpu.Assembler{}
		for key, value := range defines {
			asm.Predefine(key, value)
		}
		prog, err = asm.Parse(inf)
	} else {
		ld := &cpu.Loader{}
		prog, err = ld.Parse(inf)
	}
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
	}

	return
}

// emulatorDefines collects the assembler predefines of the emulator.
func emulatorDefines() map[string]string {
	defines := map[string]string{}
	for key, value := range emulator.NewEmulator().Defines() {
		defines[key] = value
	}
	return defines
}

func runCommand() *cobra.Command {
	var configPath string
	var assemble bool
	var verbose bool
	var trace bool
	var snapshot string

	cmd := &cobra.Command{
		Use:   "run PROGRAM",
		Short: "Load and execute a program until it halts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg := config.Default()
			if len(configPath) != 0 {
				cfg, err = config.Load(configPath)
				if err != nil {
					return
				}
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Run.Verbose = verbose
			}
			if cmd.Flags().Changed("trace") {
				cfg.Run.Trace = trace
			}
			if cmd.Flags().Changed("snapshot") {
				cfg.Run.Snapshot = snapshot
			}

			prog, err := loadProgram(args[0], assemble, emulatorDefines())
			if err != nil {
				return
			}

			emu := emulator.NewEmulator()
			cfg.Apply(emu.Cpu)
			emu.Verbose = cfg.Run.Verbose
			emu.Trace = cfg.Run.Trace
			emu.Program = prog
			emu.Console.Output = cmd.OutOrStdout()

			err = emu.Reset()
			if err == nil {
				err = emu.Run()
			}

			if len(cfg.Run.Snapshot) != 0 {
				serr := writeSnapshot(cfg.Run.Snapshot, emu.Snapshot(err))
				if serr != nil {
					log.Printf("%v: %v", cfg.Run.Snapshot, serr)
				}
			}

			if err != nil {
				err = fmt.Errorf("%v: %w", args[0], err)
			}

			return
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "ls8.toml configuration file")
	cmd.Flags().BoolVarP(&assemble, "asm", "a", false, "Assemble PROGRAM before running it")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")
	cmd.Flags().BoolVarP(&trace, "trace", "t", false, "Trace every instruction")
	cmd.Flags().StringVar(&snapshot, "snapshot", "", "Write a CBOR machine snapshot when the run ends")

	return cmd
}

func writeSnapshot(path string, snap *emulator.Snapshot) (err error) {
	data, err := emulator.MarshalSnapshot(snap)
	if err != nil {
		return
	}

	return os.WriteFile(path, data, 0o644)
}

func asmCommand() *cobra.Command {
	var output string
	var defines []string

	cmd := &cobra.Command{
		Use:   "asm SOURCE",
		Short: "Assemble LS8 assembly into the .ls8 program format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			predefines := emulatorDefines()
			for _, define := range defines {
				key, value, ok := strings.Cut(define, "=")
				if !ok {
					value = "1"
				}
				predefines[key] = value
			}

			prog, err := loadProgram(args[0], true, predefines)
			if err != nil {
				return
			}

			ouf := cmd.OutOrStdout()
			if len(output) != 0 && output != "-" {
				var file *os.File
				file, err = os.Create(output)
				if err != nil {
					return
				}
				defer file.Close()
				ouf = file
			}

			return prog.WriteLs8(ouf)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output .ls8 file")
	cmd.Flags().StringArrayVarP(&defines, "define", "D", nil, "Predefine NAME=VALUE")

	return cmd
}

func inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect SNAPSHOT",
		Short: "Print the machine state saved in a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return
			}

			snap, err := emulator.UnmarshalSnapshot(data)
			if err != nil {
				return
			}

			emu := emulator.NewEmulator()
			err = emu.Restore(snap)
			if err != nil {
				return
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, emu.Cpu.String())
			fmt.Fprintf(out, "% 6s: %v\n", "ticks", snap.Ticks)
			if snap.LineNo != 0 {
				fmt.Fprintf(out, "% 6s: %v\n", "line", snap.LineNo)
			}
			if len(snap.Fault) != 0 {
				fmt.Fprintf(out, "% 6s: %v\n", "fault", snap.Fault)
			}
			fmt.Fprintln(out, emu.Cpu.Trace())

			return
		},
	}

	return cmd
}
