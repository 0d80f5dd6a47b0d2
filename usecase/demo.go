package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// DemoSummary describes what a demo run did
type DemoSummary struct {
	Registered int
	// Rejected holds the construction errors of the deliberately invalid inputs
	Rejected []error
}

// RunDemo registers one valid entity per family, drives its lifecycle, and then
// feeds each family the invalid inputs it must reject.
func (s *ShowcaseService) RunDemo(ctx context.Context) (*DemoSummary, error) {
	summary := &DemoSummary{}

	pc, err := s.RegisterComputer(ctx, 16, 512)
	if err != nil {
		return nil, err
	}
	summary.Registered++
	if err := s.PowerCycle(ctx, pc.ID()); err != nil {
		return nil, err
	}

	lib, err := s.RegisterLibrary(ctx, "Pushkin Library", 5000)
	if err != nil {
		return nil, err
	}
	summary.Registered++
	if _, _, err := s.Circulate(ctx, lib.ID(), "Eugene Onegin"); err != nil {
		return nil, err
	}

	album, err := s.RegisterAlbum(ctx, "Linkin Park", "The Beatles", 17)
	if err != nil {
		return nil, err
	}
	summary.Registered++
	if err := s.Listen(ctx, album.ID()); err != nil {
		return nil, err
	}

	invalid := []struct {
		name string
		run  func() error
	}{
		{"computer without RAM", func() error { _, err := s.RegisterComputer(ctx, 0, 512); return err }},
		{"computer with negative storage", func() error { _, err := s.RegisterComputer(ctx, 16, -1); return err }},
		{"library without name", func() error { _, err := s.RegisterLibrary(ctx, "", 5); return err }},
		{"library with negative book count", func() error { _, err := s.RegisterLibrary(ctx, "Library", -1); return err }},
		{"lending a book without title", func() error { _, _, err := s.Circulate(ctx, lib.ID(), ""); return err }},
		{"album without tracks", func() error { _, err := s.RegisterAlbum(ctx, "Album", "Artist", 0); return err }},
	}
	for _, tc := range invalid {
		err := tc.run()
		if err == nil {
			return nil, fmt.Errorf("%s was accepted", tc.name)
		}
		summary.Rejected = append(summary.Rejected, err)
	}

	s.logger.Info("Demo finished",
		zap.Int("registered", summary.Registered),
		zap.Int("rejected", len(summary.Rejected)))
	return summary, nil
}
