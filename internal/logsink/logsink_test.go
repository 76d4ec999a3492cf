package logsink

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerTagsLines(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, slog.LevelDebug)).With(TagKey, TagRenderer)

	log.Info("Initializing renderer...")
	log.Error("link failed", "program", 3)
	log.Debug("frame", "w", 800, "h", 600)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "I/Renderer: Initializing renderer...", lines[0])
	assert.Equal(t, "E/Renderer: link failed program=3", lines[1])
	assert.Equal(t, "D/Renderer: frame w=800 h=600", lines[2])
}

func TestHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, slog.LevelWarn))
	log.Info("dropped")
	log.Warn("kept")
	assert.Equal(t, "W/firstgame: kept\n", buf.String())
}

func TestHandlerTagOnRecord(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, nil))
	log.Info("Puzzle solved!", TagKey, TagPuzzle)
	assert.Equal(t, "I/Puzzle: Puzzle solved!\n", buf.String())
}

func TestHandlerGroups(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, nil)).With(TagKey, TagGame).WithGroup("player")
	log.Info("moved", "x", 1.5)
	assert.Equal(t, "I/Game: moved player.x=1.5\n", buf.String())
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestSetupAndFor(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	Setup(&buf, slog.LevelInfo)
	For(TagCharacter).Info("Character moved to position: (1.000000, 2.000000)")
	assert.Equal(t, "I/Character: Character moved to position: (1.000000, 2.000000)\n", buf.String())
}

type sinkLine struct {
	level slog.Level
	tag   string
	line  string
}

func TestSinkHandlerSplitsTag(t *testing.T) {
	var got []sinkLine
	h := newSinkHandler(func(level slog.Level, tag, line string) error {
		got = append(got, sinkLine{level, tag, line})
		return nil
	}, slog.LevelInfo)
	log := slog.New(h).With(TagKey, TagShader)

	log.Debug("dropped")
	log.Error("failed to link program", "program", 7)
	slog.New(h).Info("Puzzle solved!", TagKey, TagPuzzle)

	assert.Equal(t, []sinkLine{
		{slog.LevelError, "Shader", "failed to link program program=7"},
		{slog.LevelInfo, "Puzzle", "Puzzle solved!"},
	}, got)
}

func TestPriorityFor(t *testing.T) {
	assert.Equal(t, priorityDebug, priorityFor(slog.LevelDebug))
	assert.Equal(t, priorityInfo, priorityFor(slog.LevelInfo))
	assert.Equal(t, priorityWarn, priorityFor(slog.LevelWarn))
	assert.Equal(t, priorityError, priorityFor(slog.LevelError))
	assert.Equal(t, priorityError, priorityFor(slog.LevelError+4))
}
