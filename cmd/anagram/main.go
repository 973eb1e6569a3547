package main

import (
	"bufio"
	"context"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/karthick18/anagram"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "anagram",
		Usage: "Anagram arithmetic on words",
		Commands: []*cli.Command{
			countCommand,
			occurrencesCommand,
			checkCommand,
			nextCommand,
			listCommand,
			findCommand,
		},
	}
}

var countCommand = &cli.Command{
	Name:      "count",
	Usage:     "Number of distinct anagrams of a word",
	ArgsUsage: "<word>",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		if cmd.Args().Len() != 1 {
			return fmt.Errorf("expected exactly one word")
		}

		fmt.Println(anagram.Count(cmd.Args().First()))

		return nil
	},
}

var occurrencesCommand = &cli.Command{
	Name:      "occurrences",
	Usage:     "Count anagram occurrences of a pattern in a text, overlaps included",
	ArgsUsage: "<text> <pattern>",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		if cmd.Args().Len() != 2 {
			return fmt.Errorf("expected a text and a pattern")
		}

		fmt.Println(anagram.Occurences(cmd.Args().Get(0), cmd.Args().Get(1)))

		return nil
	},
}

var checkCommand = &cli.Command{
	Name:      "check",
	Usage:     "Check whether two words are anagrams of each other",
	ArgsUsage: "<word> <word>",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		if cmd.Args().Len() != 2 {
			return fmt.Errorf("expected exactly two words")
		}

		fmt.Println(anagram.IsAnagram(cmd.Args().Get(0), cmd.Args().Get(1)))

		return nil
	},
}

var nextCommand = &cli.Command{
	Name:      "next",
	Usage:     "Next lexicographically greater anagram, wrapping past the greatest",
	ArgsUsage: "<word>",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		if cmd.Args().Len() != 1 {
			return fmt.Errorf("expected exactly one word")
		}

		fmt.Println(anagram.GetNext(cmd.Args().First()))

		return nil
	},
}

var listCommand = &cli.Command{
	Name:      "list",
	Usage:     "List every distinct anagram of a word, one per line",
	ArgsUsage: "<word>",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		if cmd.Args().Len() != 1 {
			return fmt.Errorf("expected exactly one word")
		}

		word := cmd.Args().First()
		total := anagram.Count(word)
		one := big.NewInt(1)

		for n := new(big.Int); n.Cmp(total) < 0; n.Add(n, one) {
			word = anagram.GetNext(word)
			fmt.Println(word)
		}

		return nil
	},
}

var findCommand = &cli.Command{
	Name:      "find",
	Usage:     "Find dictionary words that are anagrams of a word",
	ArgsUsage: "<word>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "dict",
			Value: "words.txt",
			Usage: "words dictionary file separated by newlines",
		},
		&cli.IntFlag{
			Name:  "max",
			Value: 10,
			Usage: "maximum number of matches to report",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		if cmd.Args().Len() != 1 {
			return fmt.Errorf("expected exactly one word")
		}

		word := cmd.Args().First()

		words, err := loadWords(cmd.String("dict"), len(word))
		if err != nil {
			return fmt.Errorf("failed to load dictionary: %w", err)
		}

		matches := anagram.NewDictionary(words).Anagrams(word, int(cmd.Int("max")))
		if len(matches) == 0 {
			return fmt.Errorf("no dictionary anagrams of %q", word)
		}

		for _, match := range matches {
			fmt.Println(match)
		}

		return nil
	},
}

// loadWords reads a newline-separated word list, keeping only entries
// of wordLen bytes.
func loadWords(path string, wordLen int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	scanner := bufio.NewScanner(f)

	words := []string{}

	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if len(word) != wordLen {
			continue
		}

		words = append(words, word)
	}

	if err = scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}
