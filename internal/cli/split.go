package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/xsss/internal/engine"
	"github.com/mrz1836/xsss/internal/output"
	"github.com/mrz1836/xsss/internal/secure"
	"github.com/mrz1836/xsss/internal/share"
	xerrors "github.com/mrz1836/xsss/pkg/errors"
)

// shareRecord is the JSON shape of one emitted share, per SPEC_FULL.md
// §4.J's "{tag,index,yhex}" records.
type shareRecord struct {
	Tag   string `json:"tag,omitempty"`
	Index int    `json:"index"`
	YHex  string `json:"yhex"`
}

//nolint:gochecknoglobals // cobra flag destinations, mirrors the teacher's wallet-create flags
var (
	splitThreshold   int
	splitShares      int
	splitSecurity    int
	splitToken       string
	splitHex         bool
	splitNoDiffusion bool
	splitQuiet       bool
	splitQUIET       bool
	splitRequireLock bool
	splitShowVersion bool
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split a secret into shares",
	Long: `Split reads one secret line from stdin (echo disabled on a terminal) and
writes N shares to stdout, any T of which reconstruct it.`,
	Example: `  xsss split -t 3 -n 5
  xsss split -t 3 -n 5 --hex --no-diffusion`,
	RunE: runSplit,
}

func runSplit(cmd *cobra.Command, _ []string) error {
	c := GetCmdContext(cmd)

	if splitShowVersion {
		return c.Fmt.Println("xsss version " + Version)
	}

	quiet := splitQuiet || splitQUIET

	secretBytes, err := readSecretLine("Enter secret: ", quiet)
	if err != nil {
		return xerrors.Wrap(xerrors.ErrIO, "%v", err)
	}
	defer secure.Wipe(secretBytes)

	if lockErr := lockOrWarn(secretBytes, splitRequireLock); lockErr != nil {
		return lockErr
	}
	defer secure.Unlock(secretBytes)

	opts := engine.SplitOptions{
		Threshold: splitThreshold,
		Shares:    splitShares,
		Security:  splitSecurity,
		Diffusion: !splitNoDiffusion,
		Hex:       splitHex,
		Token:     splitToken,
		Secret:    secretBytes,
	}

	result, err := engine.Split(opts)
	if err != nil {
		return err
	}

	if c.Log != nil {
		c.Log.Debug("split: threshold=%d shares=%d degree=%d", splitThreshold, splitShares, result.Degree)
	}

	if !splitQUIET {
		for _, w := range result.Warnings {
			if !splitQuiet {
				output.Warn(w)
			}
		}
	}

	if c.Fmt.IsJSON() {
		records := make([]shareRecord, len(result.Lines))
		for i, line := range result.Lines {
			sh, perr := share.Parse(line)
			if perr != nil {
				return xerrors.Wrap(xerrors.ErrIO, "%v", perr)
			}
			records[i] = shareRecord{Tag: sh.Token, Index: sh.Index, YHex: sh.YHex}
		}
		if perr := c.Fmt.Print(records); perr != nil {
			return xerrors.Wrap(xerrors.ErrIO, "%v", perr)
		}
		return nil
	}

	for _, line := range result.Lines {
		if perr := c.Fmt.Println(line); perr != nil {
			return xerrors.Wrap(xerrors.ErrIO, "%v", perr)
		}
	}

	return nil
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().IntVarP(&splitThreshold, "threshold", "t", 0, "number of shares required to reconstruct the secret (required)")
	splitCmd.Flags().IntVarP(&splitShares, "shares", "n", 0, "total number of shares to generate (required)")
	splitCmd.Flags().IntVarP(&splitSecurity, "security", "s", 0, "security level in bits, one of 8..1024 step 8 (default: inferred from secret length)")
	splitCmd.Flags().StringVarP(&splitToken, "token", "w", "", "prefix tag identifying this share set")
	splitCmd.Flags().BoolVarP(&splitHex, "hex", "x", false, "treat the secret as a hex string rather than UTF-8 text")
	splitCmd.Flags().BoolVarP(&splitNoDiffusion, "no-diffusion", "D", false, "disable the keyless diffusion layer")
	splitCmd.Flags().BoolVarP(&splitQuiet, "quiet", "q", false, "suppress warning messages")
	splitCmd.Flags().BoolVarP(&splitQUIET, "QUIET", "Q", false, "suppress all diagnostic messages")
	splitCmd.Flags().BoolVarP(&splitRequireLock, "require-lock", "M", false, "fail if the secret cannot be locked into physical memory")
	splitCmd.Flags().BoolVar(&splitShowVersion, "version", false, "print version information and exit")
}
