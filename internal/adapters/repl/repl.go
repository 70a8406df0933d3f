// Package repl is the terminal front end: chat input goes through the same
// interpreter the messaging webhook uses, and slash commands expose the
// back-office operations that have no chat form.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"backoffice-bot/internal/app"
)

// Run starts the interactive loop. A literal "\n" in the input is expanded
// to a newline so the three-line structured order fits on one prompt line.
func Run(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader) {
	fmt.Println("Back-office bot")
	fmt.Println("Type a chat message (use \\n for line breaks), or /help for commands.")
	fmt.Println(strings.Repeat("-", 70))

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Printf("read error: %v\n", err)
			return
		}
		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if quit := dispatchSlash(ctx, svc, reader, input); quit {
				return
			}
			continue
		}

		text := strings.ReplaceAll(input, "\\n", "\n")
		fmt.Println(svc.HandleMessage(ctx, text))
	}
}

func dispatchSlash(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader, input string) bool {
	tokens := strings.Fields(strings.TrimPrefix(input, "/"))
	if len(tokens) == 0 {
		return false
	}
	cmd := strings.ToLower(tokens[0])
	args := tokens[1:]

	switch cmd {
	case "inventory", "inv":
		printInventory(svc.ListInventory(ctx))

	case "purchases", "po":
		printPurchases(svc.ListPurchases(ctx))

	case "quotations", "qt":
		printQuotations(svc.ListQuotations(ctx))

	case "quote", "new":
		handleNewQuotation(ctx, reader, svc)

	case "convert":
		if len(args) < 1 {
			fmt.Println("Usage: /convert <quotation-id> [evidence-ref]")
			return false
		}
		evidence := ""
		if len(args) >= 2 {
			evidence = args[1]
		}
		tx, err := svc.ConvertQuotation(ctx, args[0], evidence)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return false
		}
		fmt.Printf("PO created: %s, net price %s, status %s\n", tx.ID, tx.NetPrice.StringFixed(2), tx.Status)

	case "help":
		fmt.Println("Commands:")
		fmt.Println("  /inventory              list inventory")
		fmt.Println("  /purchases              list purchase transactions")
		fmt.Println("  /quotations             list quotations")
		fmt.Println("  /quote                  create a quotation interactively")
		fmt.Println("  /convert <id> [ref]     convert a Pending quotation to a PO")
		fmt.Println("  /quit                   exit")
		fmt.Println("Anything else is treated as a chat message.")

	case "quit", "exit", "q":
		return true

	default:
		fmt.Printf("Unknown command /%s — try /help\n", cmd)
	}
	return false
}
