package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/library-service/cmd/library/library"
	"github.com/library-service/cmd/library/validate"

	"github.com/spf13/cobra"
)

type cli struct {
	catalog *library.CatalogService
	members *library.MemberService
	loans   *library.LoanService
	fines   *library.FineService
}

func newRootCmd(catalog *library.CatalogService, members *library.MemberService,
	loans *library.LoanService, fines *library.FineService) *cobra.Command {
	c := &cli{catalog: catalog, members: members, loans: loans, fines: fines}

	root := &cobra.Command{
		Use:           "library",
		Short:         "Manage the library's catalog, members, loans and fines",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		c.authorsCmd(),
		c.categoriesCmd(),
		c.booksCmd(),
		c.usersCmd(),
		c.loansCmd(),
		c.finesCmd(),
	)
	return root
}

func (c *cli) authorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "authors",
		Short: "Manage authors",
	}

	var firstName, lastName, nationality string

	create := &cobra.Command{
		Use:   "create",
		Short: "Register a new author",
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := validate.Text("first name", firstName, 1, 100)
			if err != nil {
				return err
			}
			last, err := validate.Text("last name", lastName, 1, 100)
			if err != nil {
				return err
			}
			nat, err := validate.Text("nationality", nationality, 1, 100)
			if err != nil {
				return err
			}

			author, err := c.catalog.CreateAuthor(cmd.Context(), library.CreateAuthorRequest{
				FirstName:   first,
				LastName:    last,
				Nationality: nat,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created author #%d: %s %s\n", author.ID, author.FirstName, author.LastName)
			return nil
		},
	}
	create.Flags().StringVar(&firstName, "first-name", "", "author's first name")
	create.Flags().StringVar(&lastName, "last-name", "", "author's last name")
	create.Flags().StringVar(&nationality, "nationality", "", "author's nationality")
	create.MarkFlagRequired("first-name")
	create.MarkFlagRequired("last-name")
	create.MarkFlagRequired("nationality")

	list := &cobra.Command{
		Use:   "list",
		Short: "List all authors",
		RunE: func(cmd *cobra.Command, args []string) error {
			authors, err := c.catalog.ListAuthors(cmd.Context())
			if err != nil {
				return err
			}
			w := newTable()
			fmt.Fprintln(w, "ID\tFIRST NAME\tLAST NAME\tNATIONALITY")
			for _, a := range authors {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", a.ID, a.FirstName, a.LastName, a.Nationality)
			}
			return w.Flush()
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			author, err := c.catalog.GetAuthor(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("Author #%d\n  Name: %s %s\n  Nationality: %s\n",
				author.ID, author.FirstName, author.LastName, author.Nationality)
			return nil
		},
	}

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an author's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			req := library.UpdateAuthorRequest{ID: id}
			if cmd.Flags().Changed("first-name") {
				v, err := validate.Text("first name", firstName, 1, 100)
				if err != nil {
					return err
				}
				req.FirstName = &v
			}
			if cmd.Flags().Changed("last-name") {
				v, err := validate.Text("last name", lastName, 1, 100)
				if err != nil {
					return err
				}
				req.LastName = &v
			}
			if cmd.Flags().Changed("nationality") {
				v, err := validate.Text("nationality", nationality, 1, 100)
				if err != nil {
					return err
				}
				req.Nationality = &v
			}

			author, err := c.catalog.UpdateAuthor(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("Updated author #%d\n", author.ID)
			return nil
		},
	}
	update.Flags().StringVar(&firstName, "first-name", "", "new first name")
	update.Flags().StringVar(&lastName, "last-name", "", "new last name")
	update.Flags().StringVar(&nationality, "nationality", "", "new nationality")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := c.catalog.DeleteAuthor(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted author #%d\n", id)
			return nil
		},
	}

	cmd.AddCommand(create, list, get, update, del)
	return cmd
}

func (c *cli) categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
	}

	var name, description string

	create := &cobra.Command{
		Use:   "create",
		Short: "Register a new category",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := validate.Text("name", name, 1, 100)
			if err != nil {
				return err
			}

			category, err := c.catalog.CreateCategory(cmd.Context(), library.CreateCategoryRequest{
				Name:        n,
				Description: description,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created category #%d: %s\n", category.ID, category.Name)
			return nil
		},
	}
	create.Flags().StringVar(&name, "name", "", "category name")
	create.Flags().StringVar(&description, "description", "", "category description")
	create.MarkFlagRequired("name")

	list := &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := c.catalog.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			w := newTable()
			fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
			for _, cat := range categories {
				fmt.Fprintf(w, "%d\t%s\t%s\n", cat.ID, cat.Name, cat.Description)
			}
			return w.Flush()
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			category, err := c.catalog.GetCategory(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("Category #%d\n  Name: %s\n  Description: %s\n",
				category.ID, category.Name, category.Description)
			return nil
		},
	}

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			req := library.UpdateCategoryRequest{ID: id}
			if cmd.Flags().Changed("name") {
				v, err := validate.Text("name", name, 1, 100)
				if err != nil {
					return err
				}
				req.Name = &v
			}
			if cmd.Flags().Changed("description") {
				req.Description = &description
			}

			category, err := c.catalog.UpdateCategory(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("Updated category #%d\n", category.ID)
			return nil
		},
	}
	update.Flags().StringVar(&name, "name", "", "new name")
	update.Flags().StringVar(&description, "description", "", "new description")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := c.catalog.DeleteCategory(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted category #%d\n", id)
			return nil
		},
	}

	cmd.AddCommand(create, list, get, update, del)
	return cmd
}

func (c *cli) booksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Manage the book catalog",
	}

	var (
		title, isbn           string
		authorID, categoryID  int
		publishedYear, copies int
	)

	create := &cobra.Command{
		Use:   "create",
		Short: "Register a new book",
		RunE: func(cmd *cobra.Command, args []string) error {
			normISBN, err := validate.ISBN(isbn)
			if err != nil {
				return err
			}
			year, err := validate.Year(publishedYear)
			if err != nil {
				return err
			}
			total, err := validate.Copies(copies)
			if err != nil {
				return err
			}

			book, err := c.catalog.CreateBook(cmd.Context(), library.CreateBookRequest{
				Title:         title,
				ISBN:          normISBN,
				AuthorID:      authorID,
				CategoryID:    categoryID,
				PublishedYear: year,
				TotalCopies:   total,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created book #%d: %s\n", book.ID, book.Title)
			return nil
		},
	}
	create.Flags().StringVar(&title, "title", "", "book title")
	create.Flags().StringVar(&isbn, "isbn", "", "ISBN, 10 or 13 digits")
	create.Flags().IntVar(&authorID, "author", 0, "author id")
	create.Flags().IntVar(&categoryID, "category", 0, "category id")
	create.Flags().IntVar(&publishedYear, "year", 0, "published year")
	create.Flags().IntVar(&copies, "copies", 1, "total copies")
	create.MarkFlagRequired("title")
	create.MarkFlagRequired("isbn")
	create.MarkFlagRequired("author")
	create.MarkFlagRequired("category")
	create.MarkFlagRequired("year")

	list := &cobra.Command{
		Use:   "list",
		Short: "List all books",
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := c.catalog.ListBooks(cmd.Context())
			if err != nil {
				return err
			}
			w := newTable()
			fmt.Fprintln(w, "ID\tTITLE\tISBN\tYEAR\tAVAILABLE\tACTIVE")
			for _, b := range books {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d/%d\t%t\n",
					b.ID, b.Title, b.ISBN, b.PublishedYear, b.AvailableCopies, b.TotalCopies, b.Active)
			}
			return w.Flush()
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			book, err := c.catalog.GetBook(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("Book #%d\n  Title: %s\n  ISBN: %s\n  Author: #%d\n  Category: #%d\n  Year: %d\n  Copies: %d/%d available\n  Active: %t\n",
				book.ID, book.Title, book.ISBN, book.AuthorID, book.CategoryID,
				book.PublishedYear, book.AvailableCopies, book.TotalCopies, book.Active)
			return nil
		},
	}

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a book's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			req := library.UpdateBookRequest{ID: id}
			if cmd.Flags().Changed("title") {
				req.Title = &title
			}
			if cmd.Flags().Changed("isbn") {
				v, err := validate.ISBN(isbn)
				if err != nil {
					return err
				}
				req.ISBN = &v
			}
			if cmd.Flags().Changed("year") {
				v, err := validate.Year(publishedYear)
				if err != nil {
					return err
				}
				req.PublishedYear = &v
			}
			if cmd.Flags().Changed("copies") {
				v, err := validate.Copies(copies)
				if err != nil {
					return err
				}
				req.TotalCopies = &v
			}

			book, err := c.catalog.UpdateBook(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("Updated book #%d\n", book.ID)
			return nil
		},
	}
	update.Flags().StringVar(&title, "title", "", "new title")
	update.Flags().StringVar(&isbn, "isbn", "", "new ISBN")
	update.Flags().IntVar(&publishedYear, "year", 0, "new published year")
	update.Flags().IntVar(&copies, "copies", 0, "new total copies")

	deactivate := &cobra.Command{
		Use:   "deactivate <id>",
		Short: "Remove a book from circulation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			book, err := c.catalog.DeactivateBook(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("Deactivated book #%d: %s\n", book.ID, book.Title)
			return nil
		},
	}

	cmd.AddCommand(create, list, get, update, deactivate)
	return cmd
}

func (c *cli) usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage registered users",
	}

	var firstName, lastName, email, phone, address string

	create := &cobra.Command{
		Use:   "create",
		Short: "Register a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := validate.Text("first name", firstName, 1, 100)
			if err != nil {
				return err
			}
			last, err := validate.Text("last name", lastName, 1, 100)
			if err != nil {
				return err
			}
			mail, err := validate.Email(email)
			if err != nil {
				return err
			}
			tel, err := validate.Phone(phone)
			if err != nil {
				return err
			}

			user, err := c.members.CreateUser(cmd.Context(), library.CreateUserRequest{
				FirstName: first,
				LastName:  last,
				Email:     mail,
				Phone:     tel,
				Address:   address,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created user #%d: %s %s\n", user.ID, user.FirstName, user.LastName)
			return nil
		},
	}
	create.Flags().StringVar(&firstName, "first-name", "", "user's first name")
	create.Flags().StringVar(&lastName, "last-name", "", "user's last name")
	create.Flags().StringVar(&email, "email", "", "user's email address")
	create.Flags().StringVar(&phone, "phone", "", "user's phone number")
	create.Flags().StringVar(&address, "address", "", "user's address")
	create.MarkFlagRequired("first-name")
	create.MarkFlagRequired("last-name")
	create.MarkFlagRequired("email")
	create.MarkFlagRequired("phone")

	list := &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := c.members.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			w := newTable()
			fmt.Fprintln(w, "ID\tFIRST NAME\tLAST NAME\tEMAIL\tACTIVE\tPENDING FINES")
			for _, u := range users {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\t%d\n",
					u.ID, u.FirstName, u.LastName, u.Email, u.Active, u.PendingFines)
			}
			return w.Flush()
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			user, err := c.members.GetUser(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("User #%d\n  Name: %s %s\n  Email: %s\n  Phone: %s\n  Address: %s\n  Active: %t\n  Pending fines: %d\n",
				user.ID, user.FirstName, user.LastName, user.Email, user.Phone,
				user.Address, user.Active, user.PendingFines)
			return nil
		},
	}

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a user's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			req := library.UpdateUserRequest{ID: id}
			if cmd.Flags().Changed("first-name") {
				v, err := validate.Text("first name", firstName, 1, 100)
				if err != nil {
					return err
				}
				req.FirstName = &v
			}
			if cmd.Flags().Changed("last-name") {
				v, err := validate.Text("last name", lastName, 1, 100)
				if err != nil {
					return err
				}
				req.LastName = &v
			}
			if cmd.Flags().Changed("email") {
				v, err := validate.Email(email)
				if err != nil {
					return err
				}
				req.Email = &v
			}
			if cmd.Flags().Changed("phone") {
				v, err := validate.Phone(phone)
				if err != nil {
					return err
				}
				req.Phone = &v
			}
			if cmd.Flags().Changed("address") {
				req.Address = &address
			}

			user, err := c.members.UpdateUser(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("Updated user #%d\n", user.ID)
			return nil
		},
	}
	update.Flags().StringVar(&firstName, "first-name", "", "new first name")
	update.Flags().StringVar(&lastName, "last-name", "", "new last name")
	update.Flags().StringVar(&email, "email", "", "new email address")
	update.Flags().StringVar(&phone, "phone", "", "new phone number")
	update.Flags().StringVar(&address, "address", "", "new address")

	deactivate := &cobra.Command{
		Use:   "deactivate <id>",
		Short: "Deactivate a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			user, err := c.members.DeactivateUser(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("Deactivated user #%d: %s %s\n", user.ID, user.FirstName, user.LastName)
			return nil
		},
	}

	cmd.AddCommand(create, list, get, update, deactivate)
	return cmd
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", arg)
	}
	return id, nil
}
