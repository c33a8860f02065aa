package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zava-ai/zava"
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Print the agent card",
	Long:  "Prints the A2A capability document this agent serves at /agent-card.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fatal("Error loading configuration: %v", err)
		}
		card := zava.NewAgentCard(cfg.Server.Host, cfg.Server.Port)
		data, err := json.MarshalIndent(card, "", "  ")
		if err != nil {
			fatal("Error encoding agent card: %v", err)
		}
		fmt.Println(string(data))
	},
}

func init() {
	rootCmd.AddCommand(cardCmd)
}
