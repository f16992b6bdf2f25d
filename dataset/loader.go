package dataset

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/lamarche-perrin/mdc"
	"github.com/lamarche-perrin/mdc/blobstore"
	"github.com/lamarche-perrin/mdc/hierarchy"
	"github.com/lamarche-perrin/mdc/resource"
)

// Loader reads dataset files from a blob store.
type Loader struct {
	store      blobstore.BlobStore
	logger     *mdc.Logger
	metrics    mdc.MetricsCollector
	controller *resource.Controller
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger configures warning/progress logging. Pass nil to disable.
func WithLogger(logger *mdc.Logger) Option {
	return func(l *Loader) {
		if logger == nil {
			logger = mdc.NoopLogger()
		}
		l.logger = logger
	}
}

// WithMetricsCollector configures load metrics. Pass nil to disable.
func WithMetricsCollector(mc mdc.MetricsCollector) Option {
	return func(l *Loader) {
		if mc == nil {
			mc = mdc.NoopMetricsCollector{}
		}
		l.metrics = mc
	}
}

// WithResourceController configures IO throttling for background loads.
func WithResourceController(c *resource.Controller) Option {
	return func(l *Loader) {
		l.controller = c
	}
}

// NewLoader creates a Loader reading from the given store.
func NewLoader(store blobstore.BlobStore, optFns ...Option) *Loader {
	l := &Loader{
		store:   store,
		logger:  mdc.NoopLogger(),
		metrics: mdc.NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(l)
		}
	}
	return l
}

func (l *Loader) read(ctx context.Context, blobName string) ([]byte, error) {
	data, err := blobstore.ReadAll(ctx, l.store, blobName)
	if err != nil {
		return nil, err
	}
	if err := l.controller.WaitIO(ctx, len(data)); err != nil {
		return nil, err
	}
	return data, nil
}

// LoadHierarchy declares a new dimension on ms and populates it from a
// hierarchy file.
//
// Format, one declaration per line, blank lines ignored:
//
//	e            a new element named e
//	S e          a leaf subset S over element e
//	S s1 s2 ...  a new partition of subset S into previously-declared
//	             subsets s1..sN (declaring S if needed)
//
// The last subset to appear in the file is marked as the dimension's top.
// Duplicate element declarations and unknown subset references are logged
// and skipped.
func (l *Loader) LoadHierarchy(ctx context.Context, ms *mdc.MultiSet, setName, blobName string) error {
	start := time.Now()
	records, err := l.loadHierarchy(ctx, ms, setName, blobName)
	l.metrics.RecordLoad(records, time.Since(start), err)
	return err
}

func (l *Loader) loadHierarchy(ctx context.Context, ms *mdc.MultiSet, setName, blobName string) (int, error) {
	data, err := l.read(ctx, blobName)
	if err != nil {
		return 0, err
	}

	set, err := ms.AddSet(setName)
	if err != nil {
		return 0, err
	}
	logger := l.logger.WithSet(setName)

	var last *hierarchy.Subset
	records := 0
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		tokens := bytes.Fields(scanner.Bytes())
		switch len(tokens) {
		case 0:
			continue
		case 1:
			name := string(tokens[0])
			if _, err := set.AddElement(name); err != nil {
				var dup *hierarchy.ErrDuplicateName
				if errors.As(err, &dup) {
					logger.WarnContext(ctx, "duplicate element, skipping", "element", name)
					continue
				}
				return records, err
			}
			records++
		default:
			sub, err := l.loadSubsetLine(ctx, set, logger, tokens)
			if err != nil {
				return records, err
			}
			if sub != nil {
				last = sub
				records++
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return records, err
	}

	if last != nil {
		if err := set.MarkTop(last); err != nil {
			return records, err
		}
	}
	return records, nil
}

// loadSubsetLine handles "S x1 x2 ..." declarations. Returns the affected
// subset, or nil when the line was skipped with a warning.
func (l *Loader) loadSubsetLine(ctx context.Context, set *hierarchy.Set, logger *mdc.Logger, tokens [][]byte) (*hierarchy.Subset, error) {
	name := string(tokens[0])
	rest := tokens[1:]

	// A single trailing token naming an element declares a leaf subset.
	if len(rest) == 1 {
		if e, err := set.Element(string(rest[0])); err == nil {
			sub, err := set.AddSubset(name, hierarchy.Leaf(e))
			if err != nil {
				var dup *hierarchy.ErrDuplicateName
				if errors.As(err, &dup) {
					logger.WarnContext(ctx, "duplicate subset, skipping", "subset", name)
					return nil, nil
				}
				return nil, err
			}
			return sub, nil
		}
	}

	// Otherwise the trailing tokens are previously-declared subsets forming
	// a new partition of S.
	children := make([]*hierarchy.Subset, 0, len(rest))
	for _, tok := range rest {
		child, err := set.Subset(string(tok))
		if err != nil {
			logger.WarnContext(ctx, "unknown subset reference, skipping line",
				"subset", name,
				"reference", string(tok),
			)
			return nil, nil
		}
		children = append(children, child)
	}

	parent, err := set.Subset(name)
	if err != nil {
		if parent, err = set.AddSubset(name, hierarchy.Internal()); err != nil {
			return nil, err
		}
	}
	if _, err := set.AddPartition(parent, children...); err != nil {
		var lp *hierarchy.ErrLeafPartition
		if errors.As(err, &lp) {
			logger.WarnContext(ctx, "partition on leaf subset, skipping line", "subset", name)
			return nil, nil
		}
		return nil, err
	}
	return parent, nil
}

// LoadValues populates cell values from a value file. Each line holds one
// name per dimension followed by a numeric value; cells not mentioned keep
// their default 0. Returns the number of accepted lines.
//
// Requires ms.BuildMultiElements to have run.
func (l *Loader) LoadValues(ctx context.Context, ms *mdc.MultiSet, blobName string) (int, error) {
	start := time.Now()
	records, err := l.loadValues(ctx, ms, blobName)
	l.metrics.RecordLoad(records, time.Since(start), err)
	return records, err
}

func (l *Loader) loadValues(ctx context.Context, ms *mdc.MultiSet, blobName string) (int, error) {
	data, err := l.read(ctx, blobName)
	if err != nil {
		return 0, err
	}

	dim := ms.Dim()
	names := make([]string, dim)
	records := 0
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		tokens := bytes.Fields(scanner.Bytes())
		if len(tokens) == 0 {
			continue
		}
		if len(tokens) != dim+1 {
			l.logger.WarnContext(ctx, "bad value line, skipping",
				"tokens", len(tokens),
				"expected", dim+1,
			)
			continue
		}
		for d := 0; d < dim; d++ {
			names[d] = string(tokens[d])
		}
		value, err := strconv.ParseFloat(string(tokens[dim]), 64)
		if err != nil {
			l.logger.WarnContext(ctx, "bad value, skipping", "value", string(tokens[dim]))
			continue
		}
		if err := ms.SetValue(names, value); err != nil {
			var unknown *hierarchy.ErrUnknownName
			if errors.As(err, &unknown) {
				l.logger.WarnContext(ctx, "unknown element, skipping",
					"set", unknown.Set,
					"element", unknown.Name,
				)
				continue
			}
			return records, err
		}
		records++
	}
	if err := scanner.Err(); err != nil {
		return records, err
	}
	return records, nil
}
