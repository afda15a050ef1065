package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/kotext/kotext/pos"
	"github.com/kotext/kotext/processor"
	"github.com/kotext/kotext/tokenizer"
)

var (
	proc    *processor.Processor
	metrics *Metrics
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	proc, err = processor.New()
	if err != nil {
		log.Fatalf("Lexicon load failed: %v", err)
	}
	metrics = NewMetrics()
	metrics.DictionarySize.Set(float64(proc.Dictionary().Size()))

	mux := http.NewServeMux()
	mux.HandleFunc("/normalize", instrument("normalize", handleNormalize))
	mux.HandleFunc("/tokenize", instrument("tokenize", handleTokenize))
	mux.HandleFunc("/sentences", instrument("sentences", handleSentences))
	mux.HandleFunc("/phrases", instrument("phrases", handlePhrases))
	mux.HandleFunc("/detokenize", instrument("detokenize", handleDetokenize))
	mux.HandleFunc("/dictionary", instrument("dictionary", handleDictionary))

	if cfg.Metrics.Enabled {
		go func() {
			addr := fmt.Sprintf(":%d", cfg.Metrics.Port)
			log.Printf("Metrics listening on %s", addr)
			if err := http.ListenAndServe(addr, MetricsHandler()); err != nil {
				log.Printf("Metrics server error: %v", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	log.Printf("Server started on %s", srv.Addr)
	log.Fatal(srv.ListenAndServe())
}

// instrument wraps a handler with request counting and latency observation.
func instrument(endpoint string, h func(w http.ResponseWriter, r *http.Request) int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		status := h(w, r)
		metrics.RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		metrics.RequestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", status)).Inc()
	}
}

type textRequest struct {
	Text string `json:"text"`
}

func decodeText(w http.ResponseWriter, r *http.Request) (string, int, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return "", http.StatusMethodNotAllowed, false
	}
	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", http.StatusBadRequest, false
	}
	return req.Text, http.StatusOK, true
}

func writeJSON(w http.ResponseWriter, v any) int {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return http.StatusInternalServerError
	}
	return http.StatusOK
}

func handleNormalize(w http.ResponseWriter, r *http.Request) int {
	text, status, ok := decodeText(w, r)
	if !ok {
		return status
	}
	return writeJSON(w, map[string]string{"text": proc.Normalize(text)})
}

type tokenJSON struct {
	Text    string `json:"text"`
	Pos     string `json:"pos"`
	Offset  int    `json:"offset"`
	Length  int    `json:"length"`
	Unknown bool   `json:"unknown,omitempty"`
	Stem    string `json:"stem,omitempty"`
}

func toTokenJSON(tokens []tokenizer.KoreanToken) []tokenJSON {
	out := make([]tokenJSON, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, tokenJSON{
			Text: t.Text, Pos: t.Pos.String(), Offset: t.Offset,
			Length: t.Length, Unknown: t.Unknown, Stem: t.Stem,
		})
	}
	return out
}

func handleTokenize(w http.ResponseWriter, r *http.Request) int {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return http.StatusMethodNotAllowed
	}
	var req struct {
		Text      string `json:"text"`
		KeepSpace bool   `json:"keepSpace"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return http.StatusBadRequest
	}
	tokens := proc.Tokenize(req.Text)
	metrics.TokensPerCall.Observe(float64(len(tokens)))
	if !req.KeepSpace {
		kept := tokens[:0]
		for _, t := range tokens {
			if t.Pos != pos.Space {
				kept = append(kept, t)
			}
		}
		tokens = kept
	}
	return writeJSON(w, map[string]any{"tokens": toTokenJSON(tokens)})
}

func handleSentences(w http.ResponseWriter, r *http.Request) int {
	text, status, ok := decodeText(w, r)
	if !ok {
		return status
	}
	return writeJSON(w, map[string]any{"sentences": proc.SplitSentences(text)})
}

func handlePhrases(w http.ResponseWriter, r *http.Request) int {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return http.StatusMethodNotAllowed
	}
	var req struct {
		Text            string `json:"text"`
		FilterSpam      bool   `json:"filterSpam"`
		IncludeHashtags bool   `json:"includeHashtags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return http.StatusBadRequest
	}
	tokens := proc.Tokenize(req.Text)
	phrases := proc.ExtractPhrases(tokens, req.FilterSpam, req.IncludeHashtags)
	type phraseJSON struct {
		Text       string `json:"text"`
		Pos        string `json:"pos"`
		Offset     int    `json:"offset"`
		Length     int    `json:"length"`
		IsCompound bool   `json:"isCompound"`
	}
	out := make([]phraseJSON, 0, len(phrases))
	for _, p := range phrases {
		out = append(out, phraseJSON{p.Text, p.Pos.String(), p.Offset, p.Length, p.IsCompound})
	}
	return writeJSON(w, map[string]any{"phrases": out})
}

func handleDetokenize(w http.ResponseWriter, r *http.Request) int {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return http.StatusMethodNotAllowed
	}
	var req struct {
		Words []string `json:"words"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return http.StatusBadRequest
	}
	return writeJSON(w, map[string]string{"text": proc.Detokenize(req.Words)})
}

// handleDictionary applies a runtime dictionary mutation. The tag is parsed
// and validated at the boundary; an unknown tag is a client error.
func handleDictionary(w http.ResponseWriter, r *http.Request) int {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return http.StatusMethodNotAllowed
	}
	var req struct {
		Action string   `json:"action"` // add or remove
		Pos    string   `json:"pos"`
		Words  []string `json:"words"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return http.StatusBadRequest
	}
	tag, err := pos.Parse(req.Pos)
	if err != nil {
		if errors.Is(err, pos.ErrInvalidPos) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return http.StatusBadRequest
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return http.StatusInternalServerError
	}
	switch req.Action {
	case "add":
		err = proc.AddWords(tag, req.Words...)
	case "remove":
		err = proc.RemoveWords(tag, req.Words...)
	default:
		http.Error(w, "action must be add or remove", http.StatusBadRequest)
		return http.StatusBadRequest
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return http.StatusBadRequest
	}
	metrics.DictionarySize.Set(float64(proc.Dictionary().Size()))
	return writeJSON(w, map[string]string{"status": "ok"})
}
