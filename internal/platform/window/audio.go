package window

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 48000

// ErrUnsupportedAudio is returned for audio files that are neither MP3 nor WAV.
var ErrUnsupportedAudio = errors.New("window: unsupported audio format")

var audioContext *audio.Context

// Music is looping background music. It satisfies engine.Media.
type Music struct {
	file   *os.File
	player *audio.Player
}

// LoadMusic opens an MP3 or WAV file for looped playback.
func LoadMusic(path string) (*Music, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	stream, err := decode(f, path)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if audioContext == nil {
		audioContext = audio.NewContext(sampleRate)
	}
	player, err := audioContext.NewPlayer(stream)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &Music{file: f, player: player}, nil
}

type lengthReader interface {
	io.ReadSeeker
	Length() int64
}

func decode(f *os.File, path string) (io.ReadSeeker, error) {
	var (
		s   lengthReader
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		s, err = mp3.DecodeWithSampleRate(sampleRate, f)
	case ".wav":
		s, err = wav.DecodeWithSampleRate(sampleRate, f)
	default:
		return nil, ErrUnsupportedAudio
	}
	if err != nil {
		return nil, err
	}
	return audio.NewInfiniteLoop(s, s.Length()), nil
}

// Play starts or resumes the music.
func (m *Music) Play() error {
	m.player.Play()
	return nil
}

// Pause pauses the music, keeping its position.
func (m *Music) Pause() error {
	m.player.Pause()
	return nil
}

// Close releases the player and the file.
func (m *Music) Close() error {
	return errors.Join(m.player.Close(), m.file.Close())
}
