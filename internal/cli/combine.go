package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/xsss/internal/engine"
	"github.com/mrz1836/xsss/internal/output"
	"github.com/mrz1836/xsss/internal/secure"
	xerrors "github.com/mrz1836/xsss/pkg/errors"
)

// secretRecord is the JSON shape of the recovered secret, the combine result
// of SPEC_FULL.md §4.J, as a single "secret" field.
type secretRecord struct {
	Secret string `json:"secret"`
}

//nolint:gochecknoglobals // cobra flag destinations
var (
	combineThreshold   int
	combineHex         bool
	combineNoDiffusion bool
	combineQuiet       bool
	combineQUIET       bool
	combineRequireLock bool
	combineShowVersion bool
)

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Combine shares into the original secret",
	Long: `Combine reads T share lines from stdin and reconstructs the secret they
were split from, reversing the diffusion layer if it was applied at split
time.`,
	Example: `  xsss combine -t 3
  xsss combine -t 3 --hex`,
	RunE: runCombine,
}

func runCombine(cmd *cobra.Command, _ []string) error {
	c := GetCmdContext(cmd)

	if combineShowVersion {
		return c.Fmt.Println("xsss version " + Version)
	}

	quiet := combineQuiet || combineQUIET

	buffers, err := readShareLines(combineThreshold, quiet)
	if err != nil {
		return xerrors.Wrap(xerrors.ErrIO, "%v", err)
	}
	defer func() {
		for _, buf := range buffers {
			secure.Wipe(buf)
			secure.Unlock(buf)
		}
	}()

	for _, buf := range buffers {
		if lockErr := lockOrWarn(buf, combineRequireLock); lockErr != nil {
			return lockErr
		}
	}

	lines := make([]string, len(buffers))
	for i, buf := range buffers {
		lines[i] = string(buf)
	}

	opts := engine.CombineOptions{
		Threshold: combineThreshold,
		Diffusion: !combineNoDiffusion,
		Hex:       combineHex,
		Lines:     lines,
	}

	result, err := engine.Combine(opts)
	if err != nil {
		return err
	}

	secretBuf := []byte(result.Secret)
	defer func() {
		secure.Wipe(secretBuf)
		secure.Unlock(secretBuf)
	}()
	if lockErr := lockOrWarn(secretBuf, combineRequireLock); lockErr != nil {
		return lockErr
	}

	if c.Log != nil {
		c.Log.Debug("combine: threshold=%d degree=%d", combineThreshold, result.Degree)
	}

	if !combineQUIET {
		for _, w := range result.Warnings {
			if !combineQuiet {
				output.Warn(w)
			}
		}
	}

	secret := string(secretBuf)

	if c.Fmt.IsJSON() {
		if perr := c.Fmt.Print(secretRecord{Secret: secret}); perr != nil {
			return xerrors.Wrap(xerrors.ErrIO, "%v", perr)
		}
		return nil
	}
	if perr := c.Fmt.Println(secret); perr != nil {
		return xerrors.Wrap(xerrors.ErrIO, "%v", perr)
	}

	return nil
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.AddCommand(combineCmd)

	combineCmd.Flags().IntVarP(&combineThreshold, "threshold", "t", 0, "number of shares to read (required)")
	combineCmd.Flags().BoolVarP(&combineHex, "hex", "x", false, "render the recovered secret as hex rather than UTF-8 text")
	combineCmd.Flags().BoolVarP(&combineNoDiffusion, "no-diffusion", "D", false, "disable reversing the keyless diffusion layer")
	combineCmd.Flags().BoolVarP(&combineQuiet, "quiet", "q", false, "suppress warning messages")
	combineCmd.Flags().BoolVarP(&combineQUIET, "QUIET", "Q", false, "suppress all diagnostic messages")
	combineCmd.Flags().BoolVarP(&combineRequireLock, "require-lock", "M", false, "fail if share and secret memory cannot be locked into physical memory")
	combineCmd.Flags().BoolVar(&combineShowVersion, "version", false, "print version information and exit")
}
