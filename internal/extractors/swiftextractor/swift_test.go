package swiftextractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dejo1307/repomap/internal/model"
)

func TestMatchLine(t *testing.T) {
	tests := []struct {
		line     string
		wantName string
		wantKind model.Kind
		wantOK   bool
	}{
		{"class ViewModel {", "ViewModel", model.KindClass, true},
		{"public struct Point {", "Point", model.KindStruct, true},
		{"@MainActor public final class Store: ObservableObject {", "Store", model.KindClass, true},
		{"@available(iOS 15, *) struct Card {", "Card", model.KindStruct, true},
		{"protocol Repository {", "Repository", model.KindProtocol, true},
		{"  enum State {", "State", model.KindEnum, true},
		{"typealias Handler = () -> Void", "Handler", model.KindTypealias, true},
		{"actor Cache {", "Cache", model.KindClass, true},
		{"nonisolated private actor Worker {", "Worker", model.KindClass, true},
		{"func load() {", "", "", false},
		{"let x = 1", "", "", false},
	}
	e := New()
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			name, kind, ok := e.MatchLine(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantKind, kind)
		})
	}
}
