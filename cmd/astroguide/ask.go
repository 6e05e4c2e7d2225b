package main

import (
	"strings"

	"github.com/spf13/cobra"

	"astroguide/internal/guide"
)

type askOutput struct {
	Topic    guide.Topic `json:"topic"`
	Response string      `json:"response"`
}

func newAskCmd() *cobra.Command {
	var sign, designType, authority, moon string
	cmd := &cobra.Command{
		Use:   "ask MESSAGE",
		Short: "Answer a question for a sign and design",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := guide.AstroProfile{SunSign: guide.Sign(sign), MoonSign: moon}
			d := guide.DesignProfile{Type: guide.DesignType(designType), Authority: guide.Authority(authority)}
			topic, response := guide.Answer(p, d, strings.Join(args, " "))
			return writeJSON(cmd.OutOrStdout(), askOutput{Topic: topic, Response: response})
		},
	}
	cmd.Flags().StringVar(&sign, "sign", "", "sun sign, e.g. Leo")
	cmd.Flags().StringVar(&designType, "type", "", "human design type, e.g. Projector")
	cmd.Flags().StringVar(&authority, "authority", "", "human design authority, e.g. Splenic")
	cmd.Flags().StringVar(&moon, "moon", "", "moon sign")
	_ = cmd.MarkFlagRequired("sign")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}
