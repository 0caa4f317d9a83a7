package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	cyquery "github.com/ritamzico/cyquery"
)

const helpText = `cyquery interactive REPL

Commands:
  new <name>           Create a new empty graph
  load <name> <file>   Load a graph from a JSON file
  save <name> <file>   Save a graph to a JSON file
  unload <name>        Remove a loaded graph
  list                 List all loaded graphs
  use <name>           Set the active graph for queries
  help                 Show this help message
  exit / quit          Exit the REPL

Any other input is treated as a query against the active graph.

Query examples:
  MATCH (n:PERSON) RETURN n.name
  MATCH (a)-[e:KNOWS]->(b) WHERE b.age = 30 RETURN a, e, b
  CREATE (a:PERSON {name: "ada"}) RETURN a
`

func main() {
	graphs := make(map[string]*cyquery.Graph)
	var active string

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("cyquery — a restricted Cypher query engine")
	fmt.Println(`Type "help" for available commands.`)
	fmt.Println()

	for {
		if active != "" {
			fmt.Printf("[%s]> ", active)
		} else {
			fmt.Print("> ")
		}

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "exit", "quit":
			return

		case "help":
			fmt.Print(helpText)

		case "list":
			if len(graphs) == 0 {
				fmt.Println("(no graphs loaded)")
			} else {
				for name := range graphs {
					marker := " "
					if name == active {
						marker = "*"
					}
					fmt.Printf("  %s %s\n", marker, name)
				}
			}

		case "new":
			if len(parts) < 2 {
				fmt.Fprintln(os.Stderr, "usage: new <name>")
				continue
			}
			name := parts[1]
			graphs[name] = cyquery.New()
			if active == "" {
				active = name
			}
			fmt.Printf("created empty graph %q\n", name)

		case "use":
			if len(parts) < 2 {
				fmt.Fprintln(os.Stderr, "usage: use <name>")
				continue
			}
			name := parts[1]
			if _, ok := graphs[name]; !ok {
				fmt.Fprintf(os.Stderr, "no graph named %q\n", name)
				continue
			}
			active = name
			fmt.Printf("active graph set to %q\n", name)

		case "load":
			if len(parts) < 3 {
				fmt.Fprintln(os.Stderr, "usage: load <name> <file>")
				continue
			}
			name, path := parts[1], parts[2]
			cg, err := cyquery.LoadFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error loading %q: %v\n", path, err)
				continue
			}
			graphs[name] = cg
			if active == "" {
				active = name
			}
			fmt.Printf("loaded %q (%d vertices)\n", name, len(cg.Adapter.Vertices()))

		case "save":
			if len(parts) < 3 {
				fmt.Fprintln(os.Stderr, "usage: save <name> <file>")
				continue
			}
			name, path := parts[1], parts[2]
			cg, ok := graphs[name]
			if !ok {
				fmt.Fprintf(os.Stderr, "no graph named %q\n", name)
				continue
			}
			if err := cg.SaveFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "error saving %q: %v\n", name, err)
				continue
			}
			fmt.Printf("saved %q to %s\n", name, path)

		case "unload":
			if len(parts) < 2 {
				fmt.Fprintln(os.Stderr, "usage: unload <name>")
				continue
			}
			name := parts[1]
			if _, ok := graphs[name]; !ok {
				fmt.Fprintf(os.Stderr, "no graph named %q\n", name)
				continue
			}
			delete(graphs, name)
			if active == name {
				active = ""
			}
			fmt.Printf("unloaded %q\n", name)

		default:
			if active == "" {
				fmt.Fprintln(os.Stderr, "no active graph — use 'new' or 'load' first")
				continue
			}
			res, err := graphs[active].Query(line)
			if err != nil {
				fmt.Fprintf(os.Stderr, "query error: %v\n", err)
				continue
			}
			printResult(res)
		}
	}
}

func printResult(res cyquery.Result) {
	switch v := res.(type) {
	case cyquery.MatchResult:
		ctx := context.Background()
		n := 0
		for v.Cursor.Next(ctx) {
			fmt.Println(v.Cursor.Row().String())
			n++
		}
		if err := v.Cursor.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "query error: %v\n", err)
			return
		}
		if n == 0 {
			fmt.Println("(no matches)")
		}
	case cyquery.CreateResult:
		fmt.Println(v.Row.String())
	default:
		fmt.Println(res.String())
	}
}
