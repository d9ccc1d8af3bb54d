package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"newsrag/demo/client"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	sourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 2).
			Width(78)
)

func main() {
	baseURL := flag.String("url", client.GetEnvOrDefault("NEWSRAG_URL", "http://localhost:8080"), "API base URL")
	categories := flag.String("categories", "", "Comma-separated categories for fetch")
	maxArticles := flag.Int("max", 6, "Max articles for fetch")
	k := flag.Int("k", 5, "Result count for search")
	length := flag.String("length", "Medium", "Summary length (Brief/Medium/Detailed)")
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	c := client.NewClient(*baseURL)
	ctx := context.Background()

	var err error
	switch flag.Arg(0) {
	case "fetch":
		err = runFetch(ctx, c, *categories, *maxArticles)
	case "search":
		err = runSearch(ctx, c, strings.Join(flag.Args()[1:], " "), *k)
	case "summarize":
		err = runSummarize(ctx, c, strings.Join(flag.Args()[1:], " "), *length)
	case "categories":
		err = runCategories(ctx, c)
	case "health":
		err = runHealth(ctx, c)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Println(errorStyle.Render("Error: " + err.Error()))
		os.Exit(1)
	}
}

func usage() {
	fmt.Println(titleStyle.Render("newsrag demo client"))
	fmt.Println("Usage:")
	fmt.Println("  demo [flags] fetch")
	fmt.Println("  demo [flags] search <query>")
	fmt.Println("  demo [flags] summarize <text>")
	fmt.Println("  demo categories")
	fmt.Println("  demo health")
	flag.PrintDefaults()
}

func runFetch(ctx context.Context, c *client.Client, categories string, maxArticles int) error {
	var cats []string
	if categories != "" {
		for _, name := range strings.Split(categories, ",") {
			cats = append(cats, strings.TrimSpace(name))
		}
	}

	fmt.Println(infoStyle.Render("Fetching and indexing articles..."))
	resp, err := c.FetchNews(ctx, cats, maxArticles)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Fetched %d article(s)", resp.Count)))
	for i, a := range resp.Articles {
		fmt.Printf("%d. %s\n   %s\n", i+1,
			titleStyle.Render(a.Title),
			sourceStyle.Render(a.Source+" · "+a.Category))
		fmt.Println(infoStyle.Render("   " + a.URL))
	}
	return nil
}

func runSearch(ctx context.Context, c *client.Client, query string, k int) error {
	resp, err := c.Search(ctx, query, k)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("%d result(s) for %q", resp.Count, query)))
	for _, r := range resp.Results {
		header := r.Title
		if r.Source != "" {
			header += "  —  " + r.Source
		}
		fmt.Println(boxStyle.Render(
			titleStyle.Render(header) + "\n" +
				infoStyle.Render(r.URL) + "\n\n" +
				r.Snippet))
	}
	return nil
}

func runSummarize(ctx context.Context, c *client.Client, text, length string) error {
	summary, err := c.Summarize(ctx, text, length)
	if err != nil {
		return err
	}
	fmt.Println(boxStyle.Render(titleStyle.Render("Summary") + "\n\n" + summary))
	return nil
}

func runCategories(ctx context.Context, c *client.Client) error {
	categories, err := c.Categories(ctx)
	if err != nil {
		return err
	}
	for _, cat := range categories {
		fmt.Printf("%s %s\n", cat.Icon, cat.Name)
	}
	return nil
}

func runHealth(ctx context.Context, c *client.Client) error {
	health, err := c.Health(ctx)
	if err != nil {
		return err
	}
	fmt.Println(titleStyle.Render("Service health"))
	fmt.Printf("  status:               %s\n", health.Status)
	fmt.Printf("  frontend:             %t\n", health.Frontend)
	fmt.Printf("  inference configured: %t\n", health.InferenceConfigured)
	fmt.Printf("  indexed chunks:       %d\n", health.IndexedChunks)
	return nil
}
