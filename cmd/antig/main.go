// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/antig/antig/pkg/fs"
	"github.com/antig/antig/pkg/lfs"
	"github.com/antig/antig/pkg/log"
	"github.com/antig/antig/pkg/progress"
)

const (
	AntigVersion = "0.0.1"
)

// Copy Flags
const (
	flagRecursive  = "recursive"
	flagNoise      = "noise"
	flagNoProgress = "no-progress"
)

// Debug Flag
const (
	flagDebug = "debug"
)

// Log Flags
const (
	flagLogPath = "log-path"
	flagLogPerm = "log-perm"
)

func initCopyFlags(flag *pflag.FlagSet) {
	flag.BoolP(flagRecursive, "r", false, "copy contents recursively.  Required to copy a directory.")
	flag.Bool(flagNoise, false, "print a line for every file copied")
	flag.Bool(flagNoProgress, false, "disable showing the progress bar")
}

func initDebugFlags(flag *pflag.FlagSet) {
	flag.BoolP(flagDebug, "d", false, "print debug messages")
}

func initLogFlags(flag *pflag.FlagSet) {
	flag.String(flagLogPath, "-", "path to the log output.  Defaults to the operating system's stderr device.")
	flag.String(flagLogPerm, "0600", "file permissions for log output file as unix file mode.")
}

func initCopyCommandFlags(flag *pflag.FlagSet) {
	initDebugFlags(flag)
	initCopyFlags(flag)
	initLogFlags(flag)
}

func initViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return v, fmt.Errorf("error binding flag set to viper: %w", err)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv() // set environment variables to overwrite config
	return v, nil
}

func checkLogConfig(v *viper.Viper, args []string) error {
	logPath := v.GetString(flagLogPath)
	if len(logPath) == 0 {
		return fmt.Errorf("log path is missing")
	}
	logPerm := v.GetString(flagLogPerm)
	if len(logPerm) == 0 {
		return fmt.Errorf("log perm is missing")
	}
	_, err := strconv.ParseUint(logPerm, 8, 32)
	if err != nil {
		return fmt.Errorf("invalid format for log perm: %s", logPerm)
	}
	return nil
}

func checkCopyConfig(v *viper.Viper, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("expecting at least 2 positional arguments for source and destination, but found %d arguments", len(args))
	}
	if err := checkLogConfig(v, args); err != nil {
		return fmt.Errorf("error with log configuration: %w", err)
	}
	return nil
}

func initLogger(path string, perm string) (*log.SimpleLogger, error) {

	if path == os.DevNull {
		return log.NewSimpleLogger(io.Discard), nil
	}

	if path == "-" {
		return log.NewSimpleLogger(os.Stderr), nil
	}

	fileMode := os.FileMode(0600)

	if len(perm) > 0 {
		fm, err := strconv.ParseUint(perm, 8, 32)
		if err != nil {
			return nil, fmt.Errorf("error parsing file permissions for log file from %q", perm)
		}
		fileMode = os.FileMode(fm)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, fileMode)
	if err != nil {
		return nil, fmt.Errorf("error opening log file %q: %w", path, err)
	}

	return log.NewSimpleLogger(f), nil
}

type copySourceInput struct {
	Source       string
	Destination  string
	Recursive    bool
	Noise        bool
	ShowProgress bool
	FileSystem   fs.FileSystem
	Counter      *atomic.Int64
	Progress     fs.Progress
	Logger       fs.Logger
}

// copySource validates one source against the destination and dispatches to
// the directory or file copy.  A source that resolves to the destination
// itself is skipped.  A directory source requires the recursive flag and a
// destination that is a directory.
func copySource(ctx context.Context, input *copySourceInput) error {
	fileSystem := input.FileSystem

	sourceCanonical, err := fileSystem.Canonical(ctx, input.Source)
	if err != nil {
		return fmt.Errorf("error resolving source %q: %w", input.Source, err)
	}
	destinationCanonical, err := fileSystem.Canonical(ctx, input.Destination)
	if err != nil {
		return fmt.Errorf("error resolving destination %q: %w", input.Destination, err)
	}
	if sourceCanonical == destinationCanonical {
		return nil
	}

	sourceFileInfo, err := fileSystem.Stat(ctx, input.Source)
	if err != nil {
		return fmt.Errorf("error stating source %q: %w", input.Source, err)
	}

	if sourceFileInfo.IsDir() {
		if !input.Recursive {
			return fmt.Errorf("cannot copy a directory without recursive process")
		}
		destinationFileInfo, err := fileSystem.Stat(ctx, input.Destination)
		if err != nil {
			return fmt.Errorf("error stating destination %q: %w", input.Destination, err)
		}
		if !destinationFileInfo.IsDir() {
			return fmt.Errorf("%q is not a directory", input.Destination)
		}
		err = fs.CopyDirectory(ctx, &fs.CopyDirectoryInput{
			Source:       input.Source,
			Destination:  input.Destination,
			FileSystem:   fileSystem,
			Counter:      input.Counter,
			Progress:     input.Progress,
			Logger:       input.Logger,
			Noise:        input.Noise,
			ShowProgress: input.ShowProgress,
		})
		if err != nil {
			return fmt.Errorf("error copying directory %q to %q: %w", input.Source, input.Destination, err)
		}
		return nil
	}

	target := input.Destination
	if destinationFileInfo, statError := fileSystem.Stat(ctx, input.Destination); statError == nil && destinationFileInfo.IsDir() {
		target = fileSystem.Join(input.Destination, fileSystem.Base(input.Source))
	}
	if input.Noise && input.Progress != nil {
		input.Progress.Println(fmt.Sprintf("cp: %s => %s", input.Source, target))
	}
	err = fs.Copy(ctx, &fs.CopyInput{
		SourceName:      input.Source,
		DestinationName: target,
		FileSystem:      fileSystem,
		Logger:          input.Logger,
	})
	if err != nil {
		return fmt.Errorf("copying failed from %q into %q: %w", input.Source, target, err)
	}
	return nil
}

func main() {
	rootCommand := &cobra.Command{
		Use:                   `antig [flags] SOURCE... DESTINATION`,
		DisableFlagsInUseLine: true,
		Short: strings.Join([]string{
			"antig is a simple command line program for copying files and directories.",
			"Directories are copied with the --recursive flag and show a progress bar",
			"sized by a concurrent count of the files under each source.",
			"Files already present at the destination with an identical size are skipped.",
		}, "\n"),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {

			ctx := cmd.Context()

			v, err := initViper(cmd)
			if err != nil {
				return fmt.Errorf("error initializing viper: %w", err)
			}

			if errConfig := checkCopyConfig(v, args); errConfig != nil {
				return errConfig
			}

			debug := v.GetBool(flagDebug)
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}

			logger, err := initLogger(v.GetString(flagLogPath), v.GetString(flagLogPerm))
			if err != nil {
				return fmt.Errorf("error initializing logger: %w", err)
			}

			sources := args[:len(args)-1]
			destination := args[len(args)-1]

			recursive := v.GetBool(flagRecursive)
			noise := v.GetBool(flagNoise)
			showProgress := !v.GetBool(flagNoProgress)

			fileSystem := lfs.NewLocalFileSystem()

			// a destination of "." with a single source copies into the
			// current working directory under the source's base name
			if destination == "." && len(sources) == 1 {
				cwd, getwdError := os.Getwd()
				if getwdError != nil {
					return fmt.Errorf("cannot get the current working directory: %w", getwdError)
				}
				destination = filepath.Join(cwd, fileSystem.Base(sources[0]))
			}

			// the destination must exist before any traversal that excludes
			// it, since exclusion compares canonical paths
			if _, statError := fileSystem.Stat(ctx, destination); statError != nil {
				if !fileSystem.IsNotExist(statError) {
					return fmt.Errorf("error stating destination %q: %w", destination, statError)
				}
				if err := fileSystem.MkdirAll(ctx, destination, 0755); err != nil {
					return fmt.Errorf("cannot create a directory %q: %w", destination, err)
				}
			}

			var copyLogger fs.Logger
			if debug {
				copyLogger = logger
			}

			counter := &atomic.Int64{}

			var bar fs.Progress
			if showProgress {
				b, startError := progress.StartBar("copying")
				if startError != nil {
					return fmt.Errorf("error starting progress bar: %w", startError)
				}
				defer func() {
					_ = b.Stop()
				}()
				bar = b

				fs.CountFiles(ctx, &fs.CountFilesInput{
					Sources:     sources,
					Destination: destination,
					Counter:     counter,
					FileSystem:  fileSystem,
					Logger:      copyLogger,
				})
			} else {
				bar = progress.NewQuiet(os.Stdout)
			}

			for _, source := range sources {
				err := copySource(ctx, &copySourceInput{
					Source:       source,
					Destination:  destination,
					Recursive:    recursive,
					Noise:        noise,
					ShowProgress: showProgress,
					FileSystem:   fileSystem,
					Counter:      counter,
					Progress:     bar,
					Logger:       copyLogger,
				})
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
	initCopyCommandFlags(rootCommand.Flags())

	versionCommand := &cobra.Command{
		Use:                   `version`,
		DisableFlagsInUseLine: true,
		Short:                 "show version",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(AntigVersion)
			return nil
		},
	}

	rootCommand.AddCommand(versionCommand)

	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "antig: "+err.Error())
		fmt.Fprintln(os.Stderr, "Try \"antig --help\" for more information.")
		os.Exit(1)
	}
}
