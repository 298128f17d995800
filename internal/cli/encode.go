package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	binarycodec "github.com/LeJamon/goXRPLd/internal/codec/binary-codec"
	"github.com/spf13/cobra"
)

var (
	encodeFile    string
	encodeFor     string
	encodeAccount string
)

// encodeCmd serializes a JSON field map (from a file or stdin) to the
// canonical hex wire form, or to one of the hash-prefixed signing blobs.
var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a JSON field map to canonical hex",
	Long: `Reads a transaction or ledger-object field map as JSON, from --file
or stdin, and writes its canonical hex serialization to stdout.

--for selects a signing blob instead of a plain encoding:
  single     STX-prefixed single-signer blob (default plain encode if omitted)
  multisign  SMT-prefixed blob; requires --account or a configured
             signing_account
  claim      CLM-prefixed payment channel claim blob (Channel, Amount fields)
  batch      BCH-prefixed batch blob (flags, txIDs fields)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := readFieldMap(encodeFile)
		if err != nil {
			return err
		}

		var blob string
		switch encodeFor {
		case "", "plain":
			blob, err = binarycodec.Encode(value)
		case "single":
			blob, err = binarycodec.EncodeForSigning(value)
		case "multisign":
			account := encodeAccount
			if account == "" {
				account = config.SigningAccount
			}
			if account == "" {
				return fmt.Errorf("cli: --account is required for --for multisign")
			}
			blob, err = binarycodec.EncodeForMultisigning(value, account)
		case "claim":
			blob, err = binarycodec.EncodeForSigningClaim(value)
		case "batch":
			blob, err = binarycodec.EncodeForSigningBatch(value)
		default:
			return fmt.Errorf("cli: unknown --for value %q", encodeFor)
		}
		if err != nil {
			return err
		}

		if !config.Uppercase {
			blob = toLowerHex(blob)
		}
		fmt.Println(blob)
		return nil
	},
}

func readFieldMap(file string) (map[string]any, error) {
	var r io.Reader = os.Stdin
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("cli: opening %s: %w", file, err)
		}
		defer f.Close()
		r = f
	}

	var value map[string]any
	if err := json.NewDecoder(r).Decode(&value); err != nil {
		return nil, fmt.Errorf("cli: decoding JSON: %w", err)
	}
	return value, nil
}

func init() {
	encodeCmd.Flags().StringVar(&encodeFile, "file", "", "path to a JSON field map (default stdin)")
	encodeCmd.Flags().StringVar(&encodeFor, "for", "plain", "plain|single|multisign|claim|batch")
	encodeCmd.Flags().StringVar(&encodeAccount, "account", "", "signer's classic address for --for multisign (default: configured signing_account)")
	rootCmd.AddCommand(encodeCmd)
}
