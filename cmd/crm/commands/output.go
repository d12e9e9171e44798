package commands

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/datatypes"

	"github.com/Leganyst/crm-core/internal/paging"
	"github.com/Leganyst/crm-core/internal/service"
)

// column - заголовок и способ вывести значение строки.
type column[T any] struct {
	title string
	value func(T) string
}

func col[T any](title string, value func(T) string) column[T] {
	return column[T]{title: title, value: value}
}

// printRows выводит страницу строк таблицей или JSON.
func printRows[T any](cmd *cobra.Command, rows []T, cols ...column[T]) error {
	page := paging.Paginate(rows, opts.page, opts.pageSize)
	w := cmd.OutOrStdout()

	if opts.jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(page)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.title
	}
	fmt.Fprintln(tw, strings.Join(titles, "\t"))

	for _, row := range page.Items {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = c.value(row)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if page.Pages() > 1 {
		fmt.Fprintf(w, "page %d of %d, %d rows\n", page.Page, page.Pages(), page.Total)
	}
	return nil
}

func printRow[T any](cmd *cobra.Command, row *T, cols ...column[T]) error {
	if opts.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(row)
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, c := range cols {
		fmt.Fprintf(tw, "%s:\t%s\n", c.title, c.value(*row))
	}
	return tw.Flush()
}

func printCreated(cmd *cobra.Command, what string, id int64) {
	if opts.jsonOutput {
		fmt.Fprintf(cmd.OutOrStdout(), "{\"id\": %d}\n", id)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %s %d\n", what, id)
}

func printAffected(cmd *cobra.Command, n int64) {
	if opts.jsonOutput {
		fmt.Fprintf(cmd.OutOrStdout(), "{\"affected\": %d}\n", n)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d row(s) affected\n", n)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// optionalDate разбирает дату из флага; пустая строка - даты нет.
func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := service.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func fmtID(id int64) string { return strconv.FormatInt(id, 10) }

func fmtDate(d datatypes.Date) string {
	return time.Time(d).Format(service.DateLayout)
}

func fmtDatePtr(d *datatypes.Date) string {
	if d == nil {
		return "-"
	}
	return fmtDate(*d)
}

func fmtTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func fmtMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
