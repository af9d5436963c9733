package rpc

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"connectrpc.com/connect"

	"datachat/internal/charttool"
	"datachat/internal/dataset"
	"datachat/internal/fetch"
	"datachat/internal/history"
	"datachat/internal/promptctx"
)

// Procedure paths follow the Connect convention even though the message
// types are plain JSON structs rather than generated protobuf.
const (
	ProcedureLoadDataset   = "/datachat.v1.DataService/LoadDataset"
	ProcedureComposePrompt = "/datachat.v1.DataService/ComposePrompt"
	ProcedureRecentLoads   = "/datachat.v1.DataService/RecentLoads"
	ProcedureDispatchChart = "/datachat.v1.ChartService/DispatchChart"
)

type LoadDatasetRequest struct {
	URL     string `json:"url"`
	Format  string `json:"format,omitempty"`
	MaxRows int    `json:"max_rows,omitempty"`
	Refresh bool   `json:"refresh,omitempty"`
}

type LoadDatasetResponse struct {
	Tabular  bool     `json:"tabular"`
	Columns  []string `json:"columns,omitempty"`
	RowCount int      `json:"row_count"`
	Context  string   `json:"context"`
}

type ComposePromptRequest struct {
	URL        string `json:"url"`
	Format     string `json:"format,omitempty"`
	BasePrompt string `json:"base_prompt,omitempty"`
	MaxRows    int    `json:"max_rows,omitempty"`
}

type ComposePromptResponse struct {
	Prompt string `json:"prompt"`
}

type RecentLoadsRequest struct {
	Limit int `json:"limit,omitempty"`
}

type RecentLoadsResponse struct {
	Loads []history.Entry `json:"loads"`
}

type DispatchChartRequest struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

type DispatchChartResponse struct {
	HTML string `json:"html"`
	Text string `json:"text"`
}

// Service implements the gateway procedures over the core pipelines.
type Service struct {
	Loader     *dataset.CachedLoader
	Dispatcher *charttool.Dispatcher
	History    *history.Store
	MaxRows    int
}

func (s *Service) LoadDataset(ctx context.Context, req *connect.Request[LoadDatasetRequest]) (*connect.Response[LoadDatasetResponse], error) {
	in := req.Msg
	if in.URL == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("url is required"))
	}
	format := dataset.Format(in.Format)
	if in.Refresh {
		s.Loader.Invalidate(in.URL, format)
	}
	ds, err := s.Loader.Load(ctx, in.URL, format)
	if err != nil {
		return nil, connectErr(err)
	}

	out := LoadDatasetResponse{
		Tabular: ds.IsTabular(),
		Context: promptctx.FormatForContext(ds, s.maxRows(in.MaxRows)),
	}
	if ds.Table != nil {
		out.Columns = ds.Table.Columns
		out.RowCount = len(ds.Table.Rows)
	}
	s.record(ctx, in.URL, string(format), out.RowCount)
	return connect.NewResponse(&out), nil
}

func (s *Service) ComposePrompt(ctx context.Context, req *connect.Request[ComposePromptRequest]) (*connect.Response[ComposePromptResponse], error) {
	in := req.Msg
	if in.URL == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("url is required"))
	}
	ds, err := s.Loader.Load(ctx, in.URL, dataset.Format(in.Format))
	if err != nil {
		return nil, connectErr(err)
	}
	prompt := promptctx.ComposePrompt(ds, in.BasePrompt, s.maxRows(in.MaxRows))
	return connect.NewResponse(&ComposePromptResponse{Prompt: prompt}), nil
}

func (s *Service) RecentLoads(ctx context.Context, req *connect.Request[RecentLoadsRequest]) (*connect.Response[RecentLoadsResponse], error) {
	loads, err := s.History.Recent(ctx, req.Msg.Limit)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&RecentLoadsResponse{Loads: loads}), nil
}

func (s *Service) DispatchChart(ctx context.Context, req *connect.Request[DispatchChartRequest]) (*connect.Response[DispatchChartResponse], error) {
	payload := s.Dispatcher.Dispatch(ctx, charttool.FunctionCall{
		Name:      req.Msg.Name,
		Arguments: req.Msg.Arguments,
	})
	return connect.NewResponse(&DispatchChartResponse{HTML: payload.HTML, Text: payload.Text}), nil
}

func (s *Service) maxRows(requested int) int {
	if requested > 0 {
		return requested
	}
	if s.MaxRows > 0 {
		return s.MaxRows
	}
	return promptctx.DefaultMaxRows
}

func (s *Service) record(ctx context.Context, url, format string, rows int) {
	if s.History == nil {
		return
	}
	err := s.History.Record(ctx, history.Entry{
		URL:      url,
		Format:   format,
		Rows:     rows,
		LoadedAt: time.Now().UTC(),
	})
	if err != nil {
		// History is best-effort; a failed insert must not fail the load.
		log.Printf("history record failed for %s: %v", url, err)
	}
}

// connectErr maps core error types onto Connect status codes.
func connectErr(err error) error {
	var unsupported *dataset.UnsupportedFormatError
	var parseErr *dataset.ParseError
	var statusErr *fetch.StatusError
	var transportErr *fetch.TransportError
	switch {
	case errors.As(err, &unsupported), errors.As(err, &parseErr):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.As(err, &statusErr), errors.As(err, &transportErr):
		return connect.NewError(connect.CodeUnavailable, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

// NewMux wires the Connect procedures, the chat websocket, and a health
// endpoint onto one mux.
func NewMux(s *Service, chat *ChatHandler) *http.ServeMux {
	codec := connect.WithCodec(jsonCodec{})
	mux := http.NewServeMux()
	mux.Handle(ProcedureLoadDataset, connect.NewUnaryHandler(ProcedureLoadDataset, s.LoadDataset, codec))
	mux.Handle(ProcedureComposePrompt, connect.NewUnaryHandler(ProcedureComposePrompt, s.ComposePrompt, codec))
	mux.Handle(ProcedureRecentLoads, connect.NewUnaryHandler(ProcedureRecentLoads, s.RecentLoads, codec))
	mux.Handle(ProcedureDispatchChart, connect.NewUnaryHandler(ProcedureDispatchChart, s.DispatchChart, codec))
	if chat != nil {
		mux.HandleFunc("/api/chat/ws", chat.HandleChatWS)
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}
