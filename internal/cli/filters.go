package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/magabrotheeeer/payments-admin/internal/query"
)

// filterFlag связывает флаг команды с параметром фильтра.
type filterFlag struct {
	name  string
	key   string
	usage string
}

var (
	sortFlags = []filterFlag{
		{name: "sort-by", key: query.SortBy, usage: "Sort field"},
		{name: "order", key: query.SortOrder, usage: "Sort order: asc or desc"},
	}
	dateFlags = []filterFlag{
		{name: "from", key: query.DateFrom, usage: "Created on or after (YYYY-MM-DD)"},
		{name: "to", key: query.DateTo, usage: "Created on or before (YYYY-MM-DD)"},
	}
)

func addListFlags(cmd *cobra.Command, flags []filterFlag) {
	cmd.Flags().Int("page", 1, "Page number")
	cmd.Flags().Int("limit", 10, "Page size")
	for _, f := range flags {
		cmd.Flags().String(f.name, "", f.usage)
	}
}

// applyFilters переносит заданные флаги в состояние фильтров одним изменением.
func applyFilters(cmd *cobra.Command, st *query.State, flags []filterFlag) error {
	changes := make(map[string]string)
	for _, f := range flags {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		v, err := cmd.Flags().GetString(f.name)
		if err != nil {
			return err
		}
		changes[f.key] = v
	}
	if cmd.Flags().Changed("limit") {
		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			return err
		}
		changes[query.Limit] = strconv.Itoa(limit)
	}
	page, err := cmd.Flags().GetInt("page")
	if err != nil {
		return err
	}
	changes[query.Page] = strconv.Itoa(page)
	return st.SetMany(changes)
}
