package main

import (
	"fmt"

	"github.com/library-service/cmd/library/library"
	"github.com/library-service/cmd/library/validate"

	"github.com/spf13/cobra"
)

func (c *cli) loansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loans",
		Short: "Manage book loans",
	}

	var userID, bookID int

	create := &cobra.Command{
		Use:   "create",
		Short: "Lend a book to a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			loan, err := c.loans.CreateLoan(cmd.Context(), userID, bookID)
			if err != nil {
				return err
			}
			fmt.Printf("Created loan #%d: book #%d to user #%d, due %s\n",
				loan.ID, loan.BookID, loan.UserID, loan.DueDate)
			return nil
		},
	}
	create.Flags().IntVar(&userID, "user", 0, "borrowing user id")
	create.Flags().IntVar(&bookID, "book", 0, "book id")
	create.MarkFlagRequired("user")
	create.MarkFlagRequired("book")

	ret := &cobra.Command{
		Use:   "return <id>",
		Short: "Return a loaned book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			loan, fineAmount, err := c.loans.ReturnLoan(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("Returned loan #%d on %s\n", loan.ID, loan.ReturnDate)
			if fineAmount > 0 {
				fmt.Printf("Late return: a fine of %.2f was issued to user #%d\n", fineAmount, loan.UserID)
			}
			return nil
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one loan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			loan, err := c.loans.GetLoan(cmd.Context(), id)
			if err != nil {
				return err
			}
			returned := "-"
			if loan.ReturnDate != nil {
				returned = loan.ReturnDate.String()
			}
			fmt.Printf("Loan #%d\n  User: #%d\n  Book: #%d\n  Loaned: %s\n  Due: %s\n  Returned: %s\n  Status: %s\n  Fine generated: %t\n",
				loan.ID, loan.UserID, loan.BookID, loan.LoanDate, loan.DueDate,
				returned, loan.Status, loan.FineGenerated)
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all loans",
		RunE: func(cmd *cobra.Command, args []string) error {
			loans, err := c.loans.ListLoans(cmd.Context())
			if err != nil {
				return err
			}
			return printLoans(loans)
		},
	}

	active := &cobra.Command{
		Use:   "active",
		Short: "List loans not yet returned",
		RunE: func(cmd *cobra.Command, args []string) error {
			loans, err := c.loans.ListActiveLoans(cmd.Context())
			if err != nil {
				return err
			}
			return printLoans(loans)
		},
	}

	overdue := &cobra.Command{
		Use:   "overdue",
		Short: "List loans past their due date",
		RunE: func(cmd *cobra.Command, args []string) error {
			loans, err := c.loans.ListOverdueLoans(cmd.Context())
			if err != nil {
				return err
			}
			return printLoans(loans)
		},
	}

	cmd.AddCommand(create, ret, get, list, active, overdue)
	return cmd
}

func (c *cli) finesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fines",
		Short: "Manage fines",
	}

	var (
		userID  int
		amount  float64
		concept string
	)

	add := &cobra.Command{
		Use:   "add",
		Short: "Issue a fine to a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := validate.Amount(amount)
			if err != nil {
				return err
			}
			fine, err := c.fines.CreateFine(cmd.Context(), userID, amt, concept)
			if err != nil {
				return err
			}
			fmt.Printf("Created fine #%d: %.2f to user #%d\n", fine.ID, fine.Amount, fine.UserID)
			return nil
		},
	}
	add.Flags().IntVar(&userID, "user", 0, "fined user id")
	add.Flags().Float64Var(&amount, "amount", 0, "fine amount")
	add.Flags().StringVar(&concept, "concept", "", "reason for the fine")
	add.MarkFlagRequired("user")
	add.MarkFlagRequired("amount")
	add.MarkFlagRequired("concept")

	pay := &cobra.Command{
		Use:   "pay <id>",
		Short: "Mark a fine as paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			fine, err := c.fines.PayFine(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("Paid fine #%d (%.2f) on %s\n", fine.ID, fine.Amount, fine.PaymentDate)
			return nil
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one fine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			fine, err := c.fines.GetFine(cmd.Context(), id)
			if err != nil {
				return err
			}
			paid := "-"
			if fine.PaymentDate != nil {
				paid = fine.PaymentDate.String()
			}
			fmt.Printf("Fine #%d\n  User: #%d\n  Amount: %.2f\n  Concept: %s\n  Issued: %s\n  Paid: %s\n  Status: %s\n",
				fine.ID, fine.UserID, fine.Amount, fine.Concept, fine.IssuedDate, paid, fine.Status)
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all fines",
		RunE: func(cmd *cobra.Command, args []string) error {
			fines, err := c.fines.ListFines(cmd.Context())
			if err != nil {
				return err
			}
			return printFines(fines)
		},
	}

	pending := &cobra.Command{
		Use:   "pending",
		Short: "List unpaid fines and their total",
		RunE: func(cmd *cobra.Command, args []string) error {
			fines, total, err := c.fines.ListPendingFines(cmd.Context())
			if err != nil {
				return err
			}
			if err := printFines(fines); err != nil {
				return err
			}
			fmt.Printf("Total pending: %.2f\n", total)
			return nil
		},
	}

	cmd.AddCommand(add, pay, get, list, pending)
	return cmd
}

func printLoans(loans []library.Loan) error {
	w := newTable()
	fmt.Fprintln(w, "ID\tUSER\tBOOK\tLOANED\tDUE\tRETURNED\tSTATUS")
	for _, l := range loans {
		returned := "-"
		if l.ReturnDate != nil {
			returned = l.ReturnDate.String()
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%s\t%s\t%s\n",
			l.ID, l.UserID, l.BookID, l.LoanDate, l.DueDate, returned, l.Status)
	}
	return w.Flush()
}

func printFines(fines []library.Fine) error {
	w := newTable()
	fmt.Fprintln(w, "ID\tUSER\tAMOUNT\tCONCEPT\tISSUED\tSTATUS")
	for _, f := range fines {
		fmt.Fprintf(w, "%d\t%d\t%.2f\t%s\t%s\t%s\n",
			f.ID, f.UserID, f.Amount, f.Concept, f.IssuedDate, f.Status)
	}
	return w.Flush()
}
