package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/api/youtube/v3"
)

func newAuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Set up or refresh OAuth2 credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, cfg, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			ch, err := client.MyChannel(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Authenticated as: %s\n", ch.Snippet.Title)
			fmt.Fprintf(out, "Channel ID:       %s\n", ch.Id)
			fmt.Fprintf(out, "Subscribers:      %s\n", subscriberCount(ch.Statistics))
			fmt.Fprintf(out, "Credentials:      %s\n", cfg.CredentialsFile())
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show authenticated channel info",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			ch, err := client.MyChannel(cmd.Context())
			if err != nil {
				return err
			}

			s := ch.Snippet
			country := s.Country
			if country == "" {
				country = "not set"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Channel:     %s\n", s.Title)
			fmt.Fprintf(out, "ID:          %s\n", ch.Id)
			fmt.Fprintf(out, "Handle:      @%s\n", strings.TrimPrefix(s.CustomUrl, "@"))
			fmt.Fprintf(out, "Subscribers: %s\n", subscriberCount(ch.Statistics))
			fmt.Fprintf(out, "Videos:      %s\n", channelCount(ch.Statistics, func(st *youtube.ChannelStatistics) uint64 { return st.VideoCount }))
			fmt.Fprintf(out, "Views:       %s\n", channelCount(ch.Statistics, func(st *youtube.ChannelStatistics) uint64 { return st.ViewCount }))
			fmt.Fprintf(out, "Country:     %s\n", country)
			fmt.Fprintf(out, "URL:         https://youtube.com/channel/%s\n", ch.Id)
			return nil
		},
	}
}

func subscriberCount(st *youtube.ChannelStatistics) string {
	if st == nil || st.HiddenSubscriberCount {
		return "hidden"
	}
	return formatCount(st.SubscriberCount)
}

func channelCount(st *youtube.ChannelStatistics, pick func(*youtube.ChannelStatistics) uint64) string {
	if st == nil {
		return "?"
	}
	return formatCount(pick(st))
}
