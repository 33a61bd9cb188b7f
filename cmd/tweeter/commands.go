package main

import (
	"github.com/spf13/cobra"

	"github.com/EmilyShepherd/go-tweeter/pkg/apis"
	"github.com/EmilyShepherd/go-tweeter/pkg/util"
	"github.com/EmilyShepherd/go-tweeter/types"
)

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the authenticating user",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		user, err := a.Account.VerifyCredentials(cmd.Context(), apis.VerifyCredentialsOptions{
			SkipStatus: apis.Ptr(true),
		}, a.callOpts...)
		if err != nil {
			return err
		}
		return printResult(cmd, user)
	}),
}

var timelineCount int

var timelineCmd = &cobra.Command{
	Use:   "timeline [screen-name]",
	Short: "Show the home timeline, or the timeline of a user",
	Args:  cobra.MaximumNArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		var (
			tweets []types.Tweet
			err    error
		)
		if len(args) == 1 {
			tweets, err = a.Statuses.UserTimeline(cmd.Context(), apis.UserTimelineOptions{
				ScreenName: &args[0],
				Count:      &timelineCount,
			}, a.callOpts...)
		} else {
			tweets, err = a.Statuses.HomeTimeline(cmd.Context(), apis.HomeTimelineOptions{
				Count: &timelineCount,
			}, a.callOpts...)
		}
		if err != nil {
			return err
		}
		return printResult(cmd, tweets)
	}),
}

var (
	searchResultType string
	searchCount      int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search recent tweets",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		resultType, err := types.ParseSearchResultType(searchResultType)
		if err != nil {
			return err
		}
		resp, err := a.Search.Tweets(cmd.Context(), args[0], apis.SearchOptions{
			ResultType: &resultType,
			Count:      &searchCount,
		}, a.callOpts...)
		if err != nil {
			return err
		}
		return printResult(cmd, resp)
	}),
}

var postReplyTo int64

var postCmd = &cobra.Command{
	Use:   "post <status>",
	Short: "Post a status update",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		var opts apis.UpdateOptions
		if postReplyTo != 0 {
			opts.InReplyToStatusID = &postReplyTo
			opts.AutoPopulateReplyMetadata = apis.Ptr(true)
		}
		tweet, err := a.Statuses.Update(cmd.Context(), args[0], opts, a.callOpts...)
		if err != nil {
			return err
		}
		return printResult(cmd, tweet)
	}),
}

var userFields string

var userCmd = &cobra.Command{
	Use:   "user <username>",
	Short: "Look up a user by username",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		resp, err := a.Users.LookupByUsername(cmd.Context(), args[0], apis.UserFieldOptions{
			UserFields: util.SplitList(userFields),
		}, a.callOpts...)
		if err != nil {
			return err
		}
		return printResult(cmd, resp)
	}),
}

func printResult(cmd *cobra.Command, v any) error {
	p := newPrinter(cmd.OutOrStdout(), output)
	if err := p.print(v); err != nil {
		return err
	}
	return p.Close()
}

func init() {
	timelineCmd.Flags().IntVar(&timelineCount, "count", 20, "Number of tweets to fetch")
	searchCmd.Flags().StringVar(&searchResultType, "result-type", string(types.SearchResultMixed), "Ranking of results (mixed, recent, popular)")
	searchCmd.Flags().IntVar(&searchCount, "count", 15, "Number of tweets to fetch")
	postCmd.Flags().Int64Var(&postReplyTo, "reply-to", 0, "ID of the status this is a reply to")
	userCmd.Flags().StringVar(&userFields, "fields", "created_at,description,public_metrics", "Comma separated user fields")

	rootCmd.AddCommand(meCmd, timelineCmd, searchCmd, postCmd, userCmd)
}
