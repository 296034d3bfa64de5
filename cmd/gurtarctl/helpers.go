package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/gurtar/gurtarctl/internal/api"
)

func printMeta(meta api.Meta) {
	if meta.Total == 0 && meta.TotalPages == 0 {
		return
	}
	pterm.Info.Printfln("page %d of %d (%d total)", meta.Page, meta.TotalPages, meta.Total)
}

// sortOrderValue is a pflag.Value that only accepts the backend's sort
// order casing.
type sortOrderValue struct {
	target *api.SortOrder
}

func newSortOrderValue(target *api.SortOrder) *sortOrderValue {
	return &sortOrderValue{target: target}
}

func (v *sortOrderValue) String() string {
	if v.target == nil {
		return ""
	}
	return string(*v.target)
}

func (v *sortOrderValue) Set(s string) error {
	switch api.SortOrder(strings.ToUpper(s)) {
	case api.SortAsc:
		*v.target = api.SortAsc
	case api.SortDesc:
		*v.target = api.SortDesc
	default:
		return fmt.Errorf("must be ASC or DESC, got %q", s)
	}
	return nil
}

func (v *sortOrderValue) Type() string {
	return "order"
}
