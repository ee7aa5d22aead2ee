package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/magabrotheeeer/payments-admin/internal/models"
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

func row(w io.Writer, cols ...string) {
	fmt.Fprintln(w, strings.Join(cols, "\t"))
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func printPagination(out io.Writer, p models.Pagination) {
	fmt.Fprintf(out, "Page %d of %d, %d total", p.CurrentPage, p.TotalPages, p.TotalCount)
	var nav []string
	if p.HasPrev {
		nav = append(nav, "prev")
	}
	if p.HasNext {
		nav = append(nav, "next")
	}
	if len(nav) > 0 {
		fmt.Fprintf(out, " (%s available)", strings.Join(nav, ", "))
	}
	fmt.Fprintln(out)
}

func printSummary(out io.Writer, summary []models.StatusSummary) {
	if len(summary) == 0 {
		return
	}
	parts := make([]string, 0, len(summary))
	for _, s := range summary {
		parts = append(parts, fmt.Sprintf("%s: %d (%s)", s.Status, s.Count, money(s.Total)))
	}
	fmt.Fprintln(out, "Summary: "+strings.Join(parts, ", "))
}

func printUsers(out io.Writer, page *models.UsersPage) error {
	w := newTable(out)
	row(w, "ID", "EMAIL", "NAME", "ROLE", "ACTIVE", "VERIFIED", "CREATED", "LAST LOGIN")
	for _, u := range page.Users {
		row(w, u.ID, orDash(u.Email), orDash(u.Name), orDash(u.Role), yesNo(u.IsActive), yesNo(u.IsVerified), formatTime(u.CreatedAt), formatTime(u.LastLogin))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	printPagination(out, page.Pagination)
	return nil
}

func printPayments(out io.Writer, payments []models.Payment) error {
	w := newTable(out)
	row(w, "ID", "USER", "PACKAGE", "AMOUNT", "STATUS", "METHOD", "CREATED")
	for _, p := range payments {
		row(w, p.ID, orDash(p.UserID.Label()), orDash(p.PackageID), money(p.Amount), orDash(p.Status), orDash(p.PaymentMethod), formatTime(p.CreatedAt))
	}
	return w.Flush()
}

func printTransactions(out io.Writer, page *models.TransactionsPage) error {
	w := newTable(out)
	row(w, "ID", "CODE", "EMAIL", "PACKAGE", "AMOUNT", "STATUS", "CREATED")
	for _, t := range page.Transactions {
		row(w, t.ID, orDash(t.TransactionCode), orDash(t.ContactEmail()), orDash(t.PackageID), money(t.Amount), orDash(t.Status), formatTime(t.CreatedAt))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	printSummary(out, page.Summary)
	printPagination(out, page.Pagination)
	return nil
}

func printUserDetail(out io.Writer, d *models.UserDetail) error {
	w := newTable(out)
	u := d.User
	row(w, "ID", u.ID)
	row(w, "Email", orDash(u.Email))
	row(w, "Name", orDash(u.Name))
	row(w, "Phone", orDash(u.Phone))
	row(w, "Role", orDash(u.Role))
	row(w, "Active", yesNo(u.IsActive))
	row(w, "Verified", yesNo(u.IsVerified))
	row(w, "Created", formatTime(u.CreatedAt))
	row(w, "Last login", formatTime(u.LastLogin))
	if s := d.Stats; s != nil {
		row(w, "Payments", fmt.Sprintf("%d (%d completed)", s.TotalPayments, s.CompletedPayments))
		row(w, "Total spent", money(s.TotalSpent))
		row(w, "Packages", fmt.Sprint(s.PackagesCount))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if len(d.Payments) == 0 {
		return nil
	}
	fmt.Fprintln(out)
	return printPayments(out, d.Payments)
}

func printTransactionDetail(out io.Writer, d *models.TransactionDetail) error {
	w := newTable(out)
	if t := d.Transaction; t != nil {
		row(w, "ID", t.ID)
		row(w, "Code", orDash(t.TransactionCode))
		row(w, "User", orDash(t.UserID.Label()))
		row(w, "Email", orDash(t.ContactEmail()))
		row(w, "Package", orDash(t.PackageID))
		row(w, "Amount", money(t.Amount))
		row(w, "Duration", orDash(t.Duration))
		row(w, "Bank", orDash(strings.TrimSpace(t.BankName+" "+t.BankAccount)))
		row(w, "Status", orDash(t.Status))
		row(w, "Notes", orDash(t.Notes))
		row(w, "Expires", formatTime(t.ExpirationDate))
		row(w, "Completed", formatTime(t.CompletedAt))
		row(w, "Created", formatTime(t.CreatedAt))
	}
	if p := d.RelatedPayment; p != nil {
		row(w, "Payment", fmt.Sprintf("%s %s (%s)", p.ID, money(p.Amount), orDash(p.Status)))
	}
	return w.Flush()
}
