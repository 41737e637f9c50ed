package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/portico-apps/searchkit/internal/core/domain"
	"github.com/portico-apps/searchkit/internal/core/ports/driving"
)

// Method names accepted by Handle. These are the names host runtimes
// dispatch on, so they follow the host-side convention.
const (
	MethodIndexItem           = "indexItem"
	MethodIndexItems          = "indexItems"
	MethodRemoveItem          = "removeItem"
	MethodRemoveItemsInDomain = "removeItemsInDomain"
	MethodRemoveExpiredItems  = "removeExpiredItems"
	MethodClearIndex          = "clearIndex"
	MethodGetItem             = "getItem"
	MethodSearch              = "search"
	MethodSetEnabled          = "setEnabled"
	MethodIsEnabled           = "isEnabled"
	MethodGetStats            = "getStats"
	MethodGetItemCount        = "getItemCount"
	MethodGetPlatform         = "getPlatform"
)

// Error codes carried in failure envelopes.
const (
	CodeIndexingDisabled = "indexing_disabled"
	CodeNotFound         = "not_found"
	CodeInvalidInput     = "invalid_input"
	CodeUnknownMethod    = "unknown_method"
	CodeBadPayload       = "bad_payload"
	CodeInternal         = "internal"
)

// Response is the envelope returned for every bridge call.
type Response struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data,omitempty"`
	Error *ErrorPayload   `json:"error,omitempty"`
}

// ErrorPayload describes a failed call to the host.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Bridge decodes host messages and drives the engine.
type Bridge struct {
	index    driving.Index
	importer driving.Importer
}

// NewBridge creates a bridge over the given services.
func NewBridge(index driving.Index, importer driving.Importer) (*Bridge, error) {
	if index == nil {
		return nil, ErrMissingIndex
	}
	if importer == nil {
		return nil, ErrMissingImporter
	}
	return &Bridge{index: index, importer: importer}, nil
}

// Handle dispatches one host message and returns the JSON envelope.
// Failures are folded into the envelope rather than returned, since the
// host side only speaks JSON.
func (b *Bridge) Handle(ctx context.Context, method string, payload []byte) []byte {
	data, err := b.dispatch(ctx, method, payload)
	if err != nil {
		return marshalResponse(Response{OK: false, Error: errorPayloadFor(err)})
	}

	resp := Response{OK: true}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return marshalResponse(Response{OK: false, Error: &ErrorPayload{
				Code:    CodeInternal,
				Message: err.Error(),
			}})
		}
		resp.Data = raw
	}
	return marshalResponse(resp)
}

// dispatch decodes the payload for the method and runs it.
func (b *Bridge) dispatch(ctx context.Context, method string, payload []byte) (any, error) {
	switch method {
	case MethodIndexItem:
		var p ItemPayload
		if err := decode(payload, &p); err != nil {
			return nil, err
		}
		if err := b.index.IndexItem(ctx, p.ToDomain()); err != nil {
			return nil, err
		}
		return IDPayload{ID: p.ID}, nil

	case MethodIndexItems:
		var payloads []ItemPayload
		if err := decode(payload, &payloads); err != nil {
			return nil, err
		}
		items := make([]domain.SearchableItem, len(payloads))
		for i, p := range payloads {
			items[i] = p.ToDomain()
		}
		return BatchPayloadFrom(b.importer.Import(ctx, items)), nil

	case MethodRemoveItem:
		var p IDPayload
		if err := decode(payload, &p); err != nil {
			return nil, err
		}
		removed, err := b.index.RemoveItem(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		return RemovedPayload{Removed: removed}, nil

	case MethodRemoveItemsInDomain:
		var p DomainPayload
		if err := decode(payload, &p); err != nil {
			return nil, err
		}
		count, err := b.index.RemoveItemsInDomain(ctx, p.Domain)
		if err != nil {
			return nil, err
		}
		return CountPayload{Count: count}, nil

	case MethodRemoveExpiredItems:
		count, err := b.index.RemoveExpiredItems(ctx)
		if err != nil {
			return nil, err
		}
		return CountPayload{Count: count}, nil

	case MethodClearIndex:
		return nil, b.index.ClearIndex(ctx)

	case MethodGetItem:
		var p IDPayload
		if err := decode(payload, &p); err != nil {
			return nil, err
		}
		item, err := b.index.GetItem(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		return ItemPayloadFrom(*item), nil

	case MethodSearch:
		var p QueryPayload
		if err := decode(payload, &p); err != nil {
			return nil, err
		}
		results, err := b.index.Search(ctx, p.ToDomain())
		if err != nil {
			return nil, err
		}
		return SearchResponseFrom(results), nil

	case MethodSetEnabled:
		var p EnabledPayload
		if err := decode(payload, &p); err != nil {
			return nil, err
		}
		b.index.SetEnabled(p.Enabled)
		return EnabledPayload{Enabled: b.index.Enabled()}, nil

	case MethodIsEnabled:
		return EnabledPayload{Enabled: b.index.Enabled()}, nil

	case MethodGetStats:
		return StatsPayloadFrom(b.index.Stats()), nil

	case MethodGetItemCount:
		count, err := b.index.ItemCount(ctx)
		if err != nil {
			return nil, err
		}
		return CountPayload{Count: count}, nil

	case MethodGetPlatform:
		platform := b.index.Platform()
		return PlatformPayload{
			Platform:    platform.String(),
			Description: platform.Description(),
		}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
}

// decode unmarshals a payload, folding syntax problems into ErrBadPayload.
func decode(payload []byte, target any) error {
	if len(payload) == 0 {
		return fmt.Errorf("%w: empty payload", ErrBadPayload)
	}
	if err := json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return nil
}

// errorPayloadFor maps engine errors onto stable host-facing codes.
func errorPayloadFor(err error) *ErrorPayload {
	code := CodeInternal
	switch {
	case errors.Is(err, domain.ErrIndexingDisabled):
		code = CodeIndexingDisabled
	case errors.Is(err, domain.ErrNotFound):
		code = CodeNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		code = CodeInvalidInput
	case errors.Is(err, ErrUnknownMethod):
		code = CodeUnknownMethod
	case errors.Is(err, ErrBadPayload):
		code = CodeBadPayload
	}
	return &ErrorPayload{Code: code, Message: err.Error()}
}

// marshalResponse encodes the envelope. The envelope only contains
// primitives and pre-encoded JSON, so failure here means a programming
// error; a static envelope keeps the host side parseable regardless.
func marshalResponse(resp Response) []byte {
	data, err := json.Marshal(resp)
	if err != nil {
		return []byte(`{"ok":false,"error":{"code":"internal","message":"encode failure"}}`)
	}
	return data
}
