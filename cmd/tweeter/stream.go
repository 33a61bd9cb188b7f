package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/EmilyShepherd/go-tweeter/pkg/apis"
	"github.com/EmilyShepherd/go-tweeter/pkg/stream"
	"github.com/EmilyShepherd/go-tweeter/pkg/util"
	"github.com/EmilyShepherd/go-tweeter/types"
)

var streamLimit int

var (
	filterTrack  string
	filterFollow []int64
	filterLevel  string
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Stream statuses matching keywords or users",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		level, err := types.ParseFilterLevel(filterLevel)
		if err != nil {
			return err
		}
		if filterTrack == "" && len(filterFollow) == 0 {
			return errors.New("at least one of --track or --follow is required")
		}

		messages, err := a.Stream.Filter(cmd.Context(), apis.FilterOptions{
			Track:       util.SplitList(filterTrack),
			Follow:      filterFollow,
			FilterLevel: &level,
		})
		if err != nil {
			return err
		}

		p := newPrinter(cmd.OutOrStdout(), output)
		defer p.Close()

		n := 0
		for m, err := range stream.All(cmd.Context(), messages) {
			if err != nil {
				return ignoreCancel(err)
			}
			if err := p.line(m); err != nil {
				return err
			}
			if n++; streamLimit > 0 && n >= streamLimit {
				return nil
			}
		}
		return nil
	}),
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Stream a random sample of public statuses",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		messages, err := a.Stream.Sample(cmd.Context())
		if err != nil {
			return err
		}

		var s types.StreamInterface[types.Message] = stream.NewAsyncStream(messages)
		defer s.Stop()

		p := newPrinter(cmd.OutOrStdout(), output)
		defer p.Close()

		n := 0
		for {
			select {
			case <-cmd.Context().Done():
				return nil
			case m, ok := <-s.ResultChan():
				if !ok {
					return s.Error()
				}
				if err := p.line(m); err != nil {
					return err
				}
				if n++; streamLimit > 0 && n >= streamLimit {
					return nil
				}
			}
		}
	}),
}

// ignoreCancel treats an interrupted stream as a clean exit.
func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func init() {
	for _, c := range []*cobra.Command{filterCmd, sampleCmd} {
		c.Flags().IntVar(&streamLimit, "limit", 0, "Stop after this many messages (0 streams until interrupted)")
	}
	filterCmd.Flags().StringVar(&filterTrack, "track", "", "Comma separated keywords to track")
	filterCmd.Flags().Int64SliceVar(&filterFollow, "follow", nil, "User IDs to follow")
	filterCmd.Flags().StringVar(&filterLevel, "filter-level", string(types.FilterLevelNone), "Minimum filter level (none, low, medium)")

	rootCmd.AddCommand(filterCmd, sampleCmd)
}
