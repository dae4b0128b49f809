package main

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"golang.org/x/term"
)

var cli struct {
	Addr string `short:"a" default:"localhost:6789" help:"Server address"`
}

const usage = `Commands:
 - Start Game: START
 - Place Bet: BET <Amount>  (e.g., BET 100)
 - Actions: HIT, STAND, DOUBLEDOWN, SURRENDER
 - Balance: BALANCE`

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("blackjack-client"),
		kong.Description("Console client for the blackjack server"),
		kong.UsageOnError(),
	)

	conn, err := net.Dial("tcp", cli.Addr)
	kctx.FatalIfErrorf(err)
	defer conn.Close()

	fmt.Printf("Connected to %s\n", cli.Addr)
	fmt.Println(usage)

	go func() {
		scanner := bufio.NewScanner(conn)
		for scanner.Scan() {
			fmt.Printf("[Server] %s\n", scanner.Text())
		}

		fmt.Println("Connection to server lost.")
		os.Exit(0)
	}()

	kctx.FatalIfErrorf(run(os.Stdin, conn, term.IsTerminal(int(os.Stdin.Fd()))))
}

// run reads commands from in and writes protocol lines to out until in is exhausted
func run(in io.Reader, out io.Writer, prompt bool) error {
	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Print("> ")
		}

		if !scanner.Scan() {
			return scanner.Err()
		}

		line, ok := translate(scanner.Text())
		if !ok {
			fmt.Println("Unknown command. Please check spelling.")
			continue
		}

		if line == "" {
			continue
		}

		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
}

// translate maps console input onto a protocol line
func translate(input string) (string, bool) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "", true
	}

	switch strings.ToUpper(fields[0]) {
	case "BET":
		if len(fields) != 2 {
			return "", false
		}

		return "PLACE_BET:" + fields[1], true
	case "HIT":
		return "PLAYER_ACTION:Hit", len(fields) == 1
	case "STAND":
		return "PLAYER_ACTION:Stand", len(fields) == 1
	case "DOUBLEDOWN":
		return "PLAYER_ACTION:DoubleDown", len(fields) == 1
	case "SURRENDER":
		return "PLAYER_ACTION:Surrender", len(fields) == 1
	case "START":
		return "START", len(fields) == 1
	case "BALANCE":
		return "BALANCE", len(fields) == 1
	}

	return "", false
}
