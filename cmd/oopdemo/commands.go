package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quiseymor/repository-2-oop/domain"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run every family through its lifecycle and its invalid inputs",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

// computerCmd boots and shuts down a single computer
var computerCmd = &cobra.Command{
	Use:   "computer [ram-gb] [storage-gb]",
	Short: "Boot and shut down a personal computer",
	Args:  cobra.ExactArgs(2),
	RunE:  runComputer,
}

// libraryCmd lends and returns a book
var libraryCmd = &cobra.Command{
	Use:   "library [name] [book-count] [title]",
	Short: "Lend a book from a public library and return it",
	Args:  cobra.ExactArgs(3),
	RunE:  runLibrary,
}

// albumCmd plays and stops an album
var albumCmd = &cobra.Command{
	Use:   "album [title] [artist] [tracks]",
	Short: "Play a studio album and stop it",
	Args:  cobra.ExactArgs(3),
	RunE:  runAlbum,
}

func runDemo(cmd *cobra.Command, args []string) error {
	summary, err := service.RunDemo(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "registered %d entities, rejected %d invalid inputs\n",
		summary.Registered, len(summary.Rejected))
	for _, rejection := range summary.Rejected {
		fmt.Fprintf(cmd.ErrOrStderr(), "  - %v\n", rejection)
	}
	return nil
}

func runComputer(cmd *cobra.Command, args []string) error {
	ram, err := parseCount("ram-gb", args[0])
	if err != nil {
		return err
	}
	storage, err := parseCount("storage-gb", args[1])
	if err != nil {
		return err
	}

	pc, err := service.RegisterComputer(cmd.Context(), ram, storage)
	if err != nil {
		return err
	}
	return service.PowerCycle(cmd.Context(), pc.ID())
}

func runLibrary(cmd *cobra.Command, args []string) error {
	bookCount, err := parseCount("book-count", args[1])
	if err != nil {
		return err
	}

	lib, err := service.RegisterLibrary(cmd.Context(), args[0], bookCount)
	if err != nil {
		return err
	}
	_, _, err = service.Circulate(cmd.Context(), lib.ID(), args[2])
	return err
}

func runAlbum(cmd *cobra.Command, args []string) error {
	tracks, err := parseCount("tracks", args[2])
	if err != nil {
		return err
	}

	album, err := service.RegisterAlbum(cmd.Context(), args[0], args[1], tracks)
	if err != nil {
		return err
	}
	return service.Listen(cmd.Context(), album.ID())
}

func parseCount(name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.InvalidArgument("%s must be an integer, got %q", name, raw)
	}
	return n, nil
}
