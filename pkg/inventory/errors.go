package inventory

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrRegionTimeout is returned when a region does not finish before its deadline
	ErrRegionTimeout = errors.New("region collection timed out")

	// ErrNoRegions is returned when there is nothing to collect
	ErrNoRegions = errors.New("no regions to collect")
)

// RegionError records the stage at which a region failed
type RegionError struct {
	Region string
	Stage  string
	Err    error
}

func (e *RegionError) Error() string {
	return fmt.Sprintf("region %s: %s: %v", e.Region, e.Stage, e.Err)
}

func (e *RegionError) Unwrap() error {
	return e.Err
}

// ErrorCollection gathers errors from concurrent region collections
type ErrorCollection struct {
	sync.Mutex
	errs []error
}

// Add records err; nil is ignored
func (c *ErrorCollection) Add(err error) {
	if err == nil {
		return
	}
	c.Lock()
	defer c.Unlock()

	c.errs = append(c.errs, err)
}

// Len returns the number of recorded errors
func (c *ErrorCollection) Len() int {
	c.Lock()
	defer c.Unlock()

	return len(c.errs)
}

// Err returns a single error describing every recorded error, or nil
func (c *ErrorCollection) Err() error {
	c.Lock()
	defer c.Unlock()

	if len(c.errs) == 0 {
		return nil
	}

	return fmt.Errorf("encountered %d error(s):\n%w", len(c.errs), errors.Join(c.errs...))
}
