package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
	"unicode/utf8"
)

type analyzeRequest struct {
	Text   string `json:"text"`
	MBTI   string `json:"mbti"`
	Locale string `json:"locale"`
	Source string `json:"source"`
}

type analyzeResponse struct {
	Literal string            `json:"literal"`
	Signals []json.RawMessage `json:"signals"`
	Lens    struct {
		Focus []string `json:"focus"`
	} `json:"mbti_lens"`
	Risks   []json.RawMessage `json:"misunderstanding_risks"`
	Summary string            `json:"summary"`
}

type result struct {
	Sample   string `json:"sample"`
	Locale   string `json:"locale"`
	MBTI     string `json:"mbti"`
	Chars    int    `json:"chars"`
	Run      int    `json:"run"`
	WallMs   int64  `json:"wall_ms"`
	Signals  int    `json:"signals"`
	Risks    int    `json:"risks"`
	OutBytes int    `json:"out_bytes"`
	Error    string `json:"error,omitempty"`
}

func main() {
	url := flag.String("url", "http://localhost:8090", "API base URL")
	runs := flag.Int("runs", 3, "Number of runs per sample")
	quality := flag.Bool("quality", false, "Quality mode: show input and summary for each sample (1 run, no timing table)")
	jsonOut := flag.String("json", "", "Write results to JSON file (e.g. results.json)")
	warmup := flag.Bool("warmup", false, "Run one warmup request per sample before measuring")
	flag.Parse()

	baseURL := strings.TrimRight(*url, "/")
	client := &http.Client{Timeout: 180 * time.Second}

	adapterName := discoverAdapter(client, baseURL)

	if *quality {
		runQualityMode(client, baseURL, adapterName)
		return
	}

	fmt.Printf("Benchmarking against %s using adapter: %s (%d runs per sample", baseURL, adapterName, *runs)
	if *warmup {
		fmt.Print(", warmup enabled")
	}
	fmt.Println(")")

	var results []result
	var failures int
	for _, sample := range Samples {
		if *warmup {
			fmt.Printf("  Warming up %s...", sample.Name)
			w := benchmark(client, baseURL, sample, 0)
			if w.Error != "" {
				fmt.Printf(" FAILED (%s)\n", w.Error)
			} else {
				fmt.Printf(" %dms (discarded)\n", w.WallMs)
			}
		}
		for run := 1; run <= *runs; run++ {
			fmt.Printf("  Running %s (run %d/%d)...", sample.Name, run, *runs)
			r := benchmark(client, baseURL, sample, run)
			results = append(results, r)
			if r.Error != "" {
				fmt.Printf(" FAILED (%s)\n", r.Error)
				failures++
			} else {
				fmt.Printf(" %dms\n", r.WallMs)
			}
		}
	}

	fmt.Println()
	printTable(results)
	printSummary(results)

	if *jsonOut != "" {
		if err := writeJSON(*jsonOut, results, baseURL, adapterName); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
		} else {
			fmt.Printf("\nResults written to %s\n", *jsonOut)
		}
	}

	if failures > 0 {
		os.Exit(1)
	}
}

// discoverAdapter asks /health which adapter the server runs. A server
// without a usable adapter still answers /analyze with sample output, so
// this only warns.
func discoverAdapter(client *http.Client, baseURL string) string {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching health: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		fmt.Fprintf(os.Stderr, "Health endpoint returned %d: %s\n", resp.StatusCode, body)
		os.Exit(1)
	}

	var health struct {
		Adapter struct {
			Name      string `json:"name"`
			Available bool   `json:"available"`
			Reason    string `json:"reason"`
		} `json:"adapter"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding health: %v\n", err)
		os.Exit(1)
	}

	if !health.Adapter.Available {
		fmt.Fprintf(os.Stderr, "Warning: adapter %s unavailable (%s)\n", health.Adapter.Name, health.Adapter.Reason)
	}
	return health.Adapter.Name
}

func analyze(client *http.Client, baseURL string, sample Sample) (analyzeResponse, int, error) {
	payload, _ := json.Marshal(analyzeRequest{
		Text:   sample.Text,
		MBTI:   sample.MBTI,
		Locale: sample.Locale,
		Source: "benchmark",
	})

	req, err := http.NewRequest(http.MethodPost, baseURL+"/analyze", strings.NewReader(string(payload)))
	if err != nil {
		return analyzeResponse{}, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return analyzeResponse{}, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return analyzeResponse{}, 0, err
	}
	if resp.StatusCode != http.StatusOK {
		return analyzeResponse{}, 0, fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var ar analyzeResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return analyzeResponse{}, 0, err
	}
	return ar, len(body), nil
}

func benchmark(client *http.Client, baseURL string, sample Sample, run int) result {
	r := result{
		Sample: sample.Name,
		Locale: sample.Locale,
		MBTI:   sample.MBTI,
		Chars:  utf8.RuneCountInString(sample.Text),
		Run:    run,
	}

	start := time.Now()
	ar, n, err := analyze(client, baseURL, sample)
	r.WallMs = time.Since(start).Milliseconds()
	if err != nil {
		r.Error = err.Error()
		return r
	}

	r.Signals = len(ar.Signals)
	r.Risks = len(ar.Risks)
	r.OutBytes = n
	return r
}

func printTable(results []result) {
	fmt.Println("| Sample | Locale | MBTI | Chars | Run | Wall (ms) | Signals | Risks | Out Bytes |")
	fmt.Println("|--------|--------|------|-------|-----|-----------|---------|-------|-----------|")
	for _, r := range results {
		if r.Error != "" {
			fmt.Printf("| %-10s | %-6s | %-4s | %5d | %d | %9s | %7s | %5s | %9s |\n",
				r.Sample, r.Locale, r.MBTI, r.Chars, r.Run, "FAIL", "-", "-", "-")
			continue
		}
		fmt.Printf("| %-10s | %-6s | %-4s | %5d | %d | %9d | %7d | %5d | %9d |\n",
			r.Sample, r.Locale, r.MBTI, r.Chars, r.Run, r.WallMs, r.Signals, r.Risks, r.OutBytes)
	}
}

func runQualityMode(client *http.Client, baseURL, adapterName string) {
	fmt.Printf("Quality test against %s using adapter: %s\n", baseURL, adapterName)
	fmt.Println(strings.Repeat("=", 72))

	var failures int
	for i, sample := range QualitySamples {
		fmt.Printf("\n--- %d/%d: %s [%s, %s] ---\n", i+1, len(QualitySamples), sample.Name, sample.MBTI, sample.Locale)
		fmt.Printf("IN:      %s\n", sample.Text)

		start := time.Now()
		ar, _, err := analyze(client, baseURL, sample)
		elapsed := time.Since(start).Milliseconds()
		if err != nil {
			fmt.Printf("ERR:     %s\n", err)
			failures++
			continue
		}

		fmt.Printf("LITERAL: %s\n", ar.Literal)
		fmt.Printf("FOCUS:   %s\n", strings.Join(ar.Lens.Focus, "; "))
		fmt.Printf("SUMMARY: %s\n", ar.Summary)
		fmt.Printf("         [%dms, %d signals, %d risks]\n", elapsed, len(ar.Signals), len(ar.Risks))
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 72))
	fmt.Printf("Done: %d/%d passed\n", len(QualitySamples)-failures, len(QualitySamples))
	if failures > 0 {
		os.Exit(1)
	}
}

func printSummary(results []result) {
	var ok []result
	for _, r := range results {
		if r.Error == "" {
			ok = append(ok, r)
		}
	}

	failed := len(results) - len(ok)

	if len(ok) == 0 {
		fmt.Printf("\nSummary: all %d runs failed\n", len(results))
		return
	}

	var totalWall int64
	var totalChars int
	minWall := ok[0].WallMs
	maxWall := ok[0].WallMs
	minSample := ok[0].Sample
	maxSample := ok[0].Sample
	thin := 0

	for _, r := range ok {
		totalWall += r.WallMs
		totalChars += r.Chars
		if r.WallMs < minWall {
			minWall = r.WallMs
			minSample = r.Sample
		}
		if r.WallMs > maxWall {
			maxWall = r.WallMs
			maxSample = r.Sample
		}
		if r.Signals < 2 || r.Risks < 2 {
			thin++
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("- Avg wall: %dms\n", totalWall/int64(len(ok)))
	fmt.Printf("- Avg ms/char: %.2f\n", float64(totalWall)/float64(totalChars))
	fmt.Printf("- Min wall: %dms (%s)\n", minWall, minSample)
	fmt.Printf("- Max wall: %dms (%s)\n", maxWall, maxSample)
	fmt.Printf("- Thin results (<2 signals or risks): %d\n", thin)
	fmt.Printf("- Total runs: %d (%d ok, %d failed)\n", len(results), len(ok), failed)
}

type jsonReport struct {
	Timestamp string   `json:"timestamp"`
	URL       string   `json:"url"`
	Adapter   string   `json:"adapter"`
	Results   []result `json:"results"`
}

func writeJSON(path string, results []result, baseURL, adapterName string) error {
	report := jsonReport{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       baseURL,
		Adapter:   adapterName,
		Results:   results,
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
