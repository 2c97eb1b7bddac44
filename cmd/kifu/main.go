// path: cmd/kifu/main.go

// Command kifu renders USI moves in official transcript notation.
//
//	kifu -sfen "startpos" 7g7f 3c3d 8h2b+
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"shogi_kifu/internal/kifu"
	"shogi_kifu/internal/usi"
)

func main() {
	sfen := flag.String("sfen", "startpos", "position record (SFEN or \"startpos\")")
	styleName := flag.String("style", "arabic", "rank numerals: arabic or traditional")
	narrow := flag.Bool("narrow", false, "fold full-width digits to ASCII")
	flag.Parse()

	style, ok := kifu.ParseStyle(*styleName)
	if !ok {
		log.Fatalf("invalid style %q", *styleName)
	}
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: kifu [-sfen record] [-style name] [-narrow] move...")
		os.Exit(2)
	}
	pos, err := usi.ParsePosition(*sfen)
	if err != nil {
		log.Fatalf("position: %v", err)
	}
	for _, token := range flag.Args() {
		mv, err := usi.ParseMove(token)
		if err != nil {
			log.Fatalf("move %q: %v", token, err)
		}
		rendered, err := kifu.Render(pos, mv, style)
		if err != nil {
			log.Fatalf("render %q: %v", token, err)
		}
		if *narrow {
			rendered = kifu.Narrow(rendered)
		}
		fmt.Println(rendered)
		if err := pos.MakeMove(mv); err != nil {
			log.Fatalf("apply %q: %v", token, err)
		}
	}
}
