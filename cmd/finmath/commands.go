package main

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/calebcase/finmath"
	"github.com/calebcase/finmath/decimal"
	"github.com/calebcase/finmath/integer"
	"github.com/calebcase/finmath/merkle"
	"github.com/calebcase/finmath/precision"
	"github.com/calebcase/finmath/price"
)

func flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	return fs
}

func parse(fs *flag.FlagSet, args []string, n int) error {
	err := fs.Parse(args)
	if err != nil {
		return Usage.Wrap(err)
	}

	if fs.NArg() != n {
		return Usage.New("%s: want %d arguments, got %d", fs.Name(), n, fs.NArg())
	}

	return nil
}

// parseTime accepts unix seconds or RFC 3339.
func parseTime(s string) (time.Time, error) {
	sec, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return time.Unix(sec, 0), nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, finmath.MalformedInput.New("time %q", s)
	}

	return t, nil
}

// Round truncates a value to a precision. With -check it rejects values that
// do not already conform.
func (a *App) Round(args []string) error {
	fs := flags("round")

	p := precision.DecimalPlaces(0)
	fs.TextVar(&p, "precision", p, "sf:N or dp:N")
	wide := fs.Bool("wide", false, "use the wide width")
	check := fs.Bool("check", false, "fail unless the value already conforms")

	err := parse(fs, args, 1)
	if err != nil {
		return err
	}

	var rounded string
	var valid bool

	if *wide {
		rounded, valid, err = round[integer.Uint256](fs.Arg(0), p)
	} else {
		rounded, valid, err = round[integer.Uint128](fs.Arg(0), p)
	}

	if err != nil {
		return err
	}

	a.Log.Info("round",
		zap.String("value", fs.Arg(0)),
		zap.Stringer("precision", p),
		zap.String("rounded", rounded),
		zap.Bool("valid", valid),
	)

	if *check && !valid {
		return finmath.MalformedInput.New("%s is finer than %s", fs.Arg(0), p)
	}

	_, err = fmt.Fprintln(a.Out, rounded)

	return err
}

func round[T integer.Integer[T]](s string, p precision.Precision) (string, bool, error) {
	d, err := decimal.Parse[T](s)
	if err != nil {
		return "", false, err
	}

	r, err := precision.Round(d, p)
	if err != nil {
		return "", false, err
	}

	valid, err := precision.Validate(d, p)
	if err != nil {
		return "", false, err
	}

	return r.String(), valid, nil
}

// Normalize rescales an oracle price to the reference decimals.
func (a *App) Normalize(args []string) error {
	fs := flags("normalize")

	decimals := fs.Int("decimals", -1, "decimals of the denom")
	denom := fs.String("denom", "", "look up the decimals in the configuration")

	err := parse(fs, args, 1)
	if err != nil {
		return err
	}

	var n uint8

	switch {
	case *denom != "" && *decimals < 0:
		n, err = a.Config.Decimals(*denom)
		if err != nil {
			return err
		}
	case *denom == "" && *decimals >= 0 && *decimals <= 255:
		n = uint8(*decimals)
	default:
		return Usage.New("normalize: want one of -decimals (0-255) or -denom")
	}

	var raw price.HumanPrice

	err = raw.UnmarshalText([]byte(fs.Arg(0)))
	if err != nil {
		return err
	}

	normalized, err := raw.Normalize(n)
	if err != nil {
		return err
	}

	a.Log.Info("normalize",
		zap.Stringer("raw", raw),
		zap.Uint8("decimals", n),
		zap.Stringer("normalized", normalized),
	)

	_, err = fmt.Fprintln(a.Out, normalized)

	return err
}

// Released sums the releases of a grants file per denom.
func (a *App) Released(args []string) error {
	fs := flags("released")

	path := fs.String("grants", "", "grants file")
	only := fs.String("denom", "", "only this denom")
	from := fs.String("from", "", "window start")
	to := fs.String("to", "", "window end")

	err := parse(fs, args, 0)
	if err != nil {
		return err
	}

	if *path == "" || *from == "" || *to == "" {
		return Usage.New("released: -grants, -from and -to are required")
	}

	start, err := parseTime(*from)
	if err != nil {
		return err
	}

	end, err := parseTime(*to)
	if err != nil {
		return err
	}

	grants, err := LoadGrants(*path)
	if err != nil {
		return err
	}

	byDenom := grants.ByDenom()
	filter := strings.ToLower(*only)

	denoms := make([]string, 0, len(byDenom))
	for denom := range byDenom {
		if filter == "" || filter == denom {
			denoms = append(denoms, denom)
		}
	}
	sort.Strings(denoms)

	for _, denom := range denoms {
		total, err := byDenom[denom].Released(start, end)
		if err != nil {
			return err
		}

		a.Log.Info("released",
			zap.String("denom", denom),
			zap.Int("schedules", len(byDenom[denom])),
			zap.Time("from", start),
			zap.Time("to", end),
			zap.Stringer("amount", total),
		)

		_, err = fmt.Fprintf(a.Out, "%s %s\n", denom, total)
		if err != nil {
			return err
		}
	}

	return nil
}

// Rate evaluates an interest curve at a utilization.
func (a *App) Rate(args []string) error {
	fs := flags("rate")

	path := fs.String("curve", "", "curve file")

	err := parse(fs, args, 1)
	if err != nil {
		return err
	}

	if *path == "" {
		return Usage.New("rate: -curve is required")
	}

	curve, err := LoadCurve(*path)
	if err != nil {
		return err
	}

	utilization, err := decimal.Parse[integer.Uint128](fs.Arg(0))
	if err != nil {
		return err
	}

	rate, err := curve.Rate(utilization)
	if err != nil {
		return err
	}

	a.Log.Info("rate",
		zap.String("curve", fmt.Sprintf("%T", curve)),
		zap.Stringer("utilization", utilization),
		zap.Stringer("rate", rate),
	)

	_, err = fmt.Fprintln(a.Out, rate)

	return err
}

// Merkle builds roots and proofs for allow-lists and verifies proofs.
func (a *App) Merkle(args []string) error {
	if len(args) == 0 {
		return Usage.New("merkle: missing subcommand")
	}

	switch args[0] {
	case "root":
		fs := flags("merkle root")

		err := parse(fs, args[1:], 1)
		if err != nil {
			return err
		}

		tree, err := a.tree(fs.Arg(0))
		if err != nil {
			return err
		}

		a.Log.Info("merkle root", zap.String("path", fs.Arg(0)), zap.String("root", tree.Root()))

		_, err = fmt.Fprintln(a.Out, tree.Root())

		return err
	case "proof":
		fs := flags("merkle proof")

		err := parse(fs, args[1:], 2)
		if err != nil {
			return err
		}

		tree, err := a.tree(fs.Arg(0))
		if err != nil {
			return err
		}

		proof, err := tree.Proof(fs.Arg(1))
		if err != nil {
			return err
		}

		a.Log.Info("merkle proof",
			zap.String("leaf", fs.Arg(1)),
			zap.String("root", tree.Root()),
			zap.Strings("proof", proof),
		)

		for _, p := range proof {
			_, err = fmt.Fprintln(a.Out, p)
			if err != nil {
				return err
			}
		}

		return nil
	case "verify":
		fs := flags("merkle verify")

		root := fs.String("root", "", "hex root")

		err := fs.Parse(args[1:])
		if err != nil {
			return Usage.Wrap(err)
		}

		if *root == "" || fs.NArg() < 1 {
			return Usage.New("merkle verify: want -root and a leaf")
		}

		m, err := merkle.New(*root)
		if err != nil {
			return err
		}

		leaf, proof := fs.Arg(0), merkle.Proof(fs.Args()[1:])

		err = m.Verify(proof, leaf)
		if err != nil {
			return err
		}

		a.Log.Info("merkle verify", zap.String("leaf", leaf), zap.Stringer("root", m))

		_, err = fmt.Fprintln(a.Out, "ok")

		return err
	}

	return Usage.New("merkle: unknown subcommand %q", args[0])
}

func (a *App) tree(path string) (merkle.Tree, error) {
	al, err := LoadAllowList(path)
	if err != nil {
		return merkle.Tree{}, err
	}

	return merkle.Build(al.Leaves)
}
