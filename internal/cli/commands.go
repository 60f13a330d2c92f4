package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-underbar/arr"
	"github.com/hasbyte1/go-underbar/collections"
)

func (a *app) commands() []*cobra.Command {
	return []*cobra.Command{
		a.uniqCmd(),
		a.flattenCmd(),
		a.zipCmd(),
		a.intersectionCmd(),
		a.differenceCmd(),
		a.shuffleCmd(),
		a.firstCmd(),
		a.lastCmd(),
		a.sortByCmd(),
		a.pluckCmd(),
		a.indexOfCmd(),
		a.containsCmd(),
		a.everyCmd(),
		a.someCmd(),
		a.reduceSumCmd(),
		a.mergeCmd("extend", "Copy the keys of every later object into the first", collections.Extend[any]),
		a.mergeCmd("defaults", "Fill keys missing from the first object from the later ones", collections.Defaults[any]),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Sequences
// ─────────────────────────────────────────────────────────────────────────────

func (a *app) uniqCmd() *cobra.Command {
	return a.eachDocument("uniq", "Remove duplicates, keeping first occurrences", func(_ *cobra.Command, doc json.RawMessage) (any, error) {
		s, err := decodeSequence(doc)
		if err != nil {
			return nil, err
		}
		return arr.Uniq(s), nil
	})
}

func (a *app) flattenCmd() *cobra.Command {
	return a.eachDocument("flatten", "Flatten nested arrays", func(_ *cobra.Command, doc json.RawMessage) (any, error) {
		v, err := decodeValue(doc)
		if err != nil {
			return nil, err
		}
		return arr.Flatten(v), nil
	})
}

func (a *app) shuffleCmd() *cobra.Command {
	return a.eachDocument("shuffle", "Randomly permute an array (see --seed)", func(_ *cobra.Command, doc json.RawMessage) (any, error) {
		s, err := decodeSequence(doc)
		if err != nil {
			return nil, err
		}
		if a.src != nil {
			return arr.ShuffleWith(s, a.src), nil
		}
		return arr.Shuffle(s), nil
	})
}

func (a *app) firstCmd() *cobra.Command {
	var n int
	cmd := a.eachDocument("first", "First element, or the first -n elements", func(cmd *cobra.Command, doc json.RawMessage) (any, error) {
		s, err := decodeSequence(doc)
		if err != nil {
			return nil, err
		}
		if cmd.Flags().Changed("count") {
			return arr.FirstN(s, n), nil
		}
		v, _ := arr.First(s)
		return v, nil
	})
	cmd.Flags().IntVarP(&n, "count", "n", 1, "number of elements to take")
	return cmd
}

func (a *app) lastCmd() *cobra.Command {
	var n int
	cmd := a.eachDocument("last", "Last element, or the last -n elements", func(cmd *cobra.Command, doc json.RawMessage) (any, error) {
		s, err := decodeSequence(doc)
		if err != nil {
			return nil, err
		}
		if cmd.Flags().Changed("count") {
			return arr.LastN(s, n), nil
		}
		v, _ := arr.Last(s)
		return v, nil
	})
	cmd.Flags().IntVarP(&n, "count", "n", 1, "number of elements to take")
	return cmd
}

func (a *app) sortByCmd() *cobra.Command {
	var key string
	cmd := a.eachDocument("sort-by", "Stable sort of an array of objects by --key", func(_ *cobra.Command, doc json.RawMessage) (any, error) {
		s, err := decodeSequence(doc)
		if err != nil {
			return nil, err
		}
		return arr.SortByKey(s, key), nil
	})
	cmd.Flags().StringVar(&key, "key", "", "property to sort by (dot paths allowed)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func (a *app) indexOfCmd() *cobra.Command {
	var target string
	cmd := a.eachDocument("index-of", "Index of the first element equal to --target, or -1", func(_ *cobra.Command, doc json.RawMessage) (any, error) {
		s, err := decodeSequence(doc)
		if err != nil {
			return nil, err
		}
		t, err := decodeValue(json.RawMessage(target))
		if err != nil {
			return nil, fmt.Errorf("--target: %w", err)
		}
		return collections.IndexOf(s, t), nil
	})
	cmd.Flags().StringVar(&target, "target", "", "JSON value to look for")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

// ─────────────────────────────────────────────────────────────────────────────
// Several sequences
// ─────────────────────────────────────────────────────────────────────────────

func (a *app) zipCmd() *cobra.Command {
	return a.allDocuments("zip", "Group the n-th elements of every array; missing positions are null", func(_ *cobra.Command, docs []json.RawMessage) (any, error) {
		seqs, err := decodeSequences(docs)
		if err != nil {
			return nil, err
		}
		return arr.Zip(seqs...), nil
	})
}

func (a *app) intersectionCmd() *cobra.Command {
	return a.allDocuments("intersection", "Elements of the shortest array present in every array", func(_ *cobra.Command, docs []json.RawMessage) (any, error) {
		seqs, err := decodeSequences(docs)
		if err != nil {
			return nil, err
		}
		return arr.Intersection(seqs...), nil
	})
}

func (a *app) differenceCmd() *cobra.Command {
	return a.allDocuments("difference", "Elements of the first array absent from all the others", func(_ *cobra.Command, docs []json.RawMessage) (any, error) {
		seqs, err := decodeSequences(docs)
		if err != nil {
			return nil, err
		}
		if len(seqs) == 0 {
			return []any{}, nil
		}
		return arr.Difference(seqs[0], seqs[1:]...), nil
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Arrays or objects
// ─────────────────────────────────────────────────────────────────────────────

func (a *app) pluckCmd() *cobra.Command {
	var key string
	cmd := a.eachDocument("pluck", "Extract --key from every element", func(_ *cobra.Command, doc json.RawMessage) (any, error) {
		c, err := decodeCollection(doc)
		if err != nil {
			return nil, err
		}
		return collections.Pluck(c, key), nil
	})
	cmd.Flags().StringVar(&key, "key", "", "property to extract (dot paths allowed)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func (a *app) containsCmd() *cobra.Command {
	var target string
	cmd := a.eachDocument("contains", "Whether any element or value equals --target", func(_ *cobra.Command, doc json.RawMessage) (any, error) {
		c, err := decodeCollection(doc)
		if err != nil {
			return nil, err
		}
		t, err := decodeValue(json.RawMessage(target))
		if err != nil {
			return nil, fmt.Errorf("--target: %w", err)
		}
		return collections.Contains(c, t), nil
	})
	cmd.Flags().StringVar(&target, "target", "", "JSON value to look for")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func (a *app) everyCmd() *cobra.Command {
	return a.eachDocument("every", "Whether every element is truthy", func(_ *cobra.Command, doc json.RawMessage) (any, error) {
		c, err := decodeCollection(doc)
		if err != nil {
			return nil, err
		}
		return collections.Every(c), nil
	})
}

func (a *app) someCmd() *cobra.Command {
	return a.eachDocument("some", "Whether at least one element is truthy", func(_ *cobra.Command, doc json.RawMessage) (any, error) {
		c, err := decodeCollection(doc)
		if err != nil {
			return nil, err
		}
		return collections.Some(c), nil
	})
}

func (a *app) reduceSumCmd() *cobra.Command {
	var initial float64
	cmd := a.eachDocument("reduce-sum", "Sum the numbers of an array or object", func(cmd *cobra.Command, doc json.RawMessage) (any, error) {
		c, err := decodeCollection(doc)
		if err != nil {
			return nil, err
		}
		nums := make([]float64, 0, c.Len())
		for _, v := range c.Values() {
			n, ok := v.(float64)
			if !ok {
				return nil, fmt.Errorf("%w: reduce-sum needs numbers, got %T", ErrInvalidInput, v)
			}
			nums = append(nums, n)
		}
		var seed []float64
		if cmd.Flags().Changed("initial") {
			seed = append(seed, initial)
		}
		return collections.Reduce(collections.FromSlice(nums), func(acc, n float64) float64 {
			return acc + n
		}, seed...)
	})
	cmd.Flags().Float64Var(&initial, "initial", 0, "initial accumulator; without it an empty input is an error")
	return cmd
}

// ─────────────────────────────────────────────────────────────────────────────
// Objects
// ─────────────────────────────────────────────────────────────────────────────

type mergeFunc func(target *collections.Mapping[any], sources ...*collections.Mapping[any]) *collections.Mapping[any]

func (a *app) mergeCmd(use, short string, merge mergeFunc) *cobra.Command {
	return a.allDocuments(use, short, func(_ *cobra.Command, docs []json.RawMessage) (any, error) {
		if len(docs) == 0 {
			return nil, fmt.Errorf("%w: %s needs a target object", ErrInvalidInput, use)
		}
		ms := make([]*collections.Mapping[any], 0, len(docs))
		for _, d := range docs {
			m, err := decodeMapping(d)
			if err != nil {
				return nil, err
			}
			ms = append(ms, m)
		}
		return merge(ms[0], ms[1:]...), nil
	})
}
