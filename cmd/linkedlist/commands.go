package main

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/Invicton-Labs/go-linkedlist/collections"
	"github.com/Invicton-Labs/go-linkedlist/linkedlist"
	"github.com/Invicton-Labs/go-linkedlist/log"
	"github.com/Invicton-Labs/go-stackerr"
	"github.com/spf13/cobra"
)

// demoCmd builds 0..4 and prints its rendering, its sum, how it compares
// with 10 and whether it holds 4 and 5.
func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the list demonstration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := linkedlist.Create(0)
			l.PushMany(collections.Range(1, 5))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, l.Render())
			fmt.Fprintln(out, l.Sum())
			fmt.Fprintln(out, l.Equals(10), l.NotEquals(10))
			fmt.Fprintln(out, l.Contains(4), l.Contains(5))
			log.FromContext(cmd.Context()).Debugw("Demo finished", "length", l.Len())
			return nil
		},
	}
}

// listValues parses the integer arguments, or falls back to the configured
// values when there are none.
func (a *app) listValues(args []string) ([]int, stackerr.Error) {
	if len(args) == 0 {
		return append([]int(nil), a.cfg.Values...), nil
	}
	values := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, stackerr.Errorf("Invalid list value '%s': must be an integer", arg)
		}
		values[i] = v
	}
	return values, nil
}

// operationCmd builds a command that loads a list, applies op and prints
// the result. Flag parsing is left to setup so that negative values are
// not taken for shorthand flags.
func (a *app) operationCmd(use string, short string, op func(l *linkedlist.List[int]) stackerr.Error) *cobra.Command {
	return &cobra.Command{
		Use:                use + " [flags] [values...]",
		Short:              short,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if help, _ := cmd.Flags().GetBool("help"); help {
				return cmd.Help()
			}
			values, err := a.listValues(a.values)
			if err != nil {
				return err
			}
			l := linkedlist.FromSlice(values)
			logger := log.FromContext(cmd.Context()).With("input", l.Render())
			if err := op(l); err != nil {
				logger.WithError(err).Debugw("Operation failed")
				return err
			}
			logger.Debugw("Operation finished", "output", l.Render())
			fmt.Fprintln(cmd.OutOrStdout(), l.Render())
			return nil
		},
	}
}

func (a *app) sortCmd() *cobra.Command {
	return a.operationCmd("sort", "Sort the values in ascending order", func(l *linkedlist.List[int]) stackerr.Error {
		l.Sort()
		return nil
	})
}

func (a *app) reverseCmd() *cobra.Command {
	return a.operationCmd("reverse", "Reverse the values", func(l *linkedlist.List[int]) stackerr.Error {
		l.Reverse()
		return nil
	})
}

func (a *app) quickSortCmd() *cobra.Command {
	return a.operationCmd("quicksort", "Run the reference quicksort (not a correct sort)", func(l *linkedlist.List[int]) stackerr.Error {
		return l.QuickSortAll()
	})
}

func (a *app) shuffleCmd() *cobra.Command {
	var seed int64
	cmd := a.operationCmd("shuffle", "Randomly permute the values", func(l *linkedlist.List[int]) stackerr.Error {
		if seed != 0 {
			l.ShuffleWithRand(rand.New(rand.NewSource(seed)))
		} else {
			l.Shuffle()
		}
		return nil
	})
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks a random permutation)")
	return cmd
}

func (a *app) removeCmd() *cobra.Command {
	var index int
	cmd := a.operationCmd("remove", "Remove the value at an index", func(l *linkedlist.List[int]) stackerr.Error {
		return l.Remove(index)
	})
	cmd.Flags().IntVar(&index, "index", 0, "0-based index of the value to remove")
	return cmd
}

func (a *app) repeatCmd() *cobra.Command {
	var times int
	cmd := a.operationCmd("repeat", "Repeat the values in place", func(l *linkedlist.List[int]) stackerr.Error {
		return l.RepeatInPlace(times)
	})
	cmd.Flags().IntVar(&times, "times", 2, "number of copies of the values in the result")
	return cmd
}
