package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/withgalaxy/tsxkit/pkg/clipboard"
	"github.com/withgalaxy/tsxkit/pkg/notify"
	"github.com/withgalaxy/tsxkit/pkg/props"
	"github.com/withgalaxy/tsxkit/pkg/studio"
)

type iconRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	SVG   string `json:"svg"`
}

type propsRequest struct {
	Input  string                  `json:"input"`
	Fields []props.FieldDescriptor `json:"fields"`
}

type generateResponse struct {
	Output  string         `json:"output,omitempty"`
	HTML    string         `json:"html,omitempty"`
	Summary string         `json:"summary,omitempty"`
	Copy    bool           `json:"copy"`
	Toasts  []notify.Toast `json:"toasts"`
}

type kindInfo struct {
	Kind props.Kind `json:"kind"`
	Type string     `json:"type"`
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	var req iconRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	toasts := &notify.Collector{}
	clip, deferred := s.clipboard()

	page := studio.NewIconPage(s.cfg, studio.Env{Clipboard: clip, Notifier: toasts})
	page.Name = req.Name
	page.SVG = req.SVG
	if req.Color != "" {
		page.Color = req.Color
	}

	err := page.Generate(r.Context())
	s.respond(w, err, page.Output, "", deferred, toasts)
}

func (s *Server) handleProps(w http.ResponseWriter, r *http.Request) {
	var req propsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	toasts := &notify.Collector{}
	clip, deferred := s.clipboard()

	page := studio.NewPropsPage(s.cfg, studio.Env{Clipboard: clip, Notifier: toasts})
	page.Input = req.Input
	if err := fillRows(page, req.Fields); err != nil {
		writeJSON(w, http.StatusBadRequest, generateResponse{
			Toasts: []notify.Toast{{Title: studio.TitleInputError, Message: err.Error(), Color: notify.ColorFailure}},
		})
		return
	}

	err := page.Generate(r.Context())

	summary := ""
	if page.Last != nil {
		summary = page.Last.Describe()
	}
	s.respond(w, err, page.Output, summary, deferred, toasts)
}

// fillRows replays the submitted rows through the page's row operations so
// kinds are checked the same way the form does.
func fillRows(page *studio.PropsPage, fields []props.FieldDescriptor) error {
	if len(fields) == 0 {
		return page.RemoveRow(0)
	}

	for i, f := range fields {
		if i > 0 {
			page.AddRow()
		}
		kind := string(f.Kind)
		if kind == "" {
			kind = string(props.KindString)
		}
		for _, set := range []struct {
			field studio.RowField
			value string
		}{
			{studio.RowName, f.Name},
			{studio.RowKind, kind},
			{studio.RowCustom, f.Custom},
			{studio.RowInner, f.Inner},
		} {
			if err := page.SetRow(i, set.field, set.value); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Server) respond(w http.ResponseWriter, err error, output, summary string, deferred *clipboard.Deferred, toasts *notify.Collector) {
	resp := generateResponse{
		Output:  output,
		Summary: summary,
		Toasts:  toasts.Toasts(),
	}
	if resp.Toasts == nil {
		resp.Toasts = []notify.Toast{}
	}

	if output != "" {
		html, herr := s.md.Code(output, "tsx")
		if herr != nil {
			log.Printf("highlight output: %v", herr)
		} else {
			resp.HTML = html
		}
	}

	status := http.StatusOK
	switch {
	case err == nil:
		resp.Copy = deferred != nil && deferred.Pending
	case errors.Is(err, studio.ErrClipboard):
		// Output stands; only the copy failed.
	default:
		status = http.StatusUnprocessableEntity
	}

	writeJSON(w, status, resp)
}

func (s *Server) handleKinds(w http.ResponseWriter, r *http.Request) {
	kinds := make([]kindInfo, 0, len(props.Kinds))
	for _, k := range props.Kinds {
		f, _ := props.FieldDescriptor{Name: "x", Kind: k}.Resolve()
		kinds = append(kinds, kindInfo{Kind: k, Type: f.Type})
	}
	writeJSON(w, http.StatusOK, kinds)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "Request body exceeds "+strconv.FormatInt(maxErr.Limit, 10)+" bytes", http.StatusRequestEntityTooLarge)
			return false
		}
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}
