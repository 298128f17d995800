package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	binarycodec "github.com/LeJamon/goXRPLd/internal/codec/binary-codec"
	"github.com/spf13/cobra"
)

// decodeCmd parses a canonical hex wire blob back into its JSON field map.
var decodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decode a canonical hex blob to a JSON field map",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := binarycodec.Decode(args[0])
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return fmt.Errorf("cli: marshaling decoded value: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}

func toLowerHex(s string) string {
	return strings.ToLower(s)
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
