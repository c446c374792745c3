package cmd

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/paw-chain/pawdex/internal/app"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// EventView is an event with its attributes flattened to a map
type EventView struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

// TxOutput is printed by every state-changing command
type TxOutput struct {
	Height  int64       `json:"height"`
	AppHash string      `json:"app_hash"`
	Result  interface{} `json:"result,omitempty"`
	Events  []EventView `json:"events"`
}

func newTxOutput(res app.BlockResult, result interface{}) TxOutput {
	return TxOutput{
		Height:  res.Height,
		AppHash: fmt.Sprintf("%X", res.AppHash),
		Result:  result,
		Events:  eventViews(res.Events),
	}
}

func eventViews(events sdk.Events) []EventView {
	views := make([]EventView, 0, len(events))
	for _, ev := range events {
		attrs := make(map[string]string, len(ev.Attributes))
		for _, attr := range ev.Attributes {
			attrs[attr.Key] = attr.Value
		}
		views = append(views, EventView{Type: ev.Type, Attributes: attrs})
	}
	return views
}

// printOutput writes v as JSON, or as YAML converted from the JSON form so
// custom JSON marshalers (math.Int, addresses) are honored.
func printOutput(cmd *cobra.Command, c *cliContext, v interface{}) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	if c.Output == outputYAML {
		var generic interface{}
		if err := json.Unmarshal(bz, &generic); err != nil {
			return err
		}
		if bz, err = yaml.Marshal(generic); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}
