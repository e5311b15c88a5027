// Command stockdesk is an interactive inventory desk.
//
// It keeps a product catalog and its transaction log in memory for the
// length of a session: sign in, work at the prompt, and everything is gone
// when you quit. 'logout' starts over with a fresh catalog and a new user.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/stockdesk/inventory"
	"github.com/stockdesk/inventory/cmd"
	"golang.org/x/term"
)

func main() {
	demo := flag.Bool("demo", false, "load a set of sample products at login")
	currency := flag.String("currency", "USD", "currency code for product prices")
	attempts := flag.Int("attempts", 3, "allowed login attempts before giving up")

	// Shell completion must run before flag.Parse, it exits on its own when
	// invoked by the shell.
	(&complete.Command{
		Flags: map[string]complete.Predictor{
			"demo":     predict.Nothing,
			"currency": predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
			"attempts": predict.Something,
		},
	}).Complete("stockdesk")

	flag.Parse()

	in := bufio.NewReader(os.Stdin)
	verifier := inventory.DefaultCredentials()

	for {
		user, ok := login(in, verifier, *attempts)
		if !ok {
			fmt.Fprintln(os.Stderr, "Too many failed attempts.")
			os.Exit(1)
		}

		catalog := inventory.NewProductCatalog(inventory.NewTransactionLedger(), nil)
		if *demo {
			inventory.SeedDemo(catalog, *currency)
		}
		cmd.Open(catalog, *currency)

		fmt.Printf("Welcome %s. Type 'commands' for a list, 'exit' to quit.\n", user)
		if !session(in, user) {
			return
		}
		// logout: loop back to a new login and a fresh catalog.
	}
}

// login prompts for a username and password until the verifier accepts them
// or the attempts are used up. It returns the accepted username.
func login(in *bufio.Reader, verifier inventory.CredentialVerifier, attempts int) (string, bool) {
	for i := 0; i < attempts; i++ {
		fmt.Print("Username: ")
		user, err := in.ReadString('\n')
		if err != nil {
			return "", false
		}
		user = strings.TrimSpace(user)

		pass, err := readPassword(in)
		if err != nil {
			return "", false
		}
		if verifier.Verify(user, pass) {
			return user, true
		}
		fmt.Fprintln(os.Stderr, "Invalid credentials.")
	}
	return "", false
}

// readPassword reads a password without echo when stdin is a terminal, and
// falls back to a plain line read otherwise (pipes, tests).
func readPassword(in *bufio.Reader) (string, error) {
	fmt.Print("Password: ")
	if term.IsTerminal(int(os.Stdin.Fd())) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		return string(raw), err
	}
	line, err := in.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}

// session runs the command loop for one signed-in user. It returns false
// when the user wants to quit, true on logout.
func session(in *bufio.Reader, user string) bool {
	fs := flag.NewFlagSet("stockdesk", flag.ContinueOnError)
	commander := subcommands.NewCommander(fs, "stockdesk")
	cmd.Register(commander)
	commander.Register(commander.HelpCommand(), "documentation")
	commander.Register(commander.CommandsCommand(), "documentation")

	for {
		fmt.Printf("%s@stockdesk> ", user)
		line, err := in.ReadString('\n')
		if err != nil {
			return false
		}
		args := fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "exit", "quit":
			return false
		case "logout":
			return true
		}
		if err := fs.Parse(args); err != nil {
			continue
		}
		commander.Execute(context.Background())
	}
}

// fields splits a command line into arguments, honoring double quotes so
// that -name "USB Hub" arrives as a single argument.
func fields(line string) []string {
	var args []string
	var b strings.Builder
	quoted, started := false, false
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			started = true
		case !quoted && (r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			if started {
				args = append(args, b.String())
				b.Reset()
				started = false
			}
		default:
			b.WriteRune(r)
			started = true
		}
	}
	if started {
		args = append(args, b.String())
	}
	return args
}
