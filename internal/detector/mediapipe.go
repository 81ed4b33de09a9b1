package detector

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gocv.io/x/gocv"
)

// idleShutdown is how long the Python service may sit unused before it is
// stopped; it restarts lazily on the next Recognize call.
const idleShutdown = 30 * time.Second

// MediaPipeRecognizer implements Recognizer using a Python MediaPipe
// gesture-recognizer subprocess. Frames go out as length-prefixed JPEG,
// results come back as one JSON line per frame.
type MediaPipeRecognizer struct {
	config    Config
	cmd       *exec.Cmd
	stdin     io.WriteCloser
	stdout    *bufio.Reader
	mu        sync.Mutex
	started   bool
	idleTimer *time.Timer
}

// NewMediaPipeRecognizer creates a new MediaPipe recognizer. The Python
// process is started lazily on first recognition.
func NewMediaPipeRecognizer(config Config) (*MediaPipeRecognizer, error) {
	if findServiceScript() == "" {
		return nil, fmt.Errorf("gesture_service.py not found")
	}
	return &MediaPipeRecognizer{config: config}, nil
}

// Recognize analyzes a frame and returns the tracked hands.
func (r *MediaPipeRecognizer) Recognize(frame *gocv.Mat) (*Frame, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureStarted(); err != nil {
		return nil, err
	}

	buf, err := gocv.IMEncode(".jpg", *frame)
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	defer buf.Close()

	data := buf.GetBytes()

	// Write length (4 bytes big-endian) + data.
	length := make([]byte, 4)
	binary.BigEndian.PutUint32(length, uint32(len(data)))

	if _, err := r.stdin.Write(length); err != nil {
		return nil, fmt.Errorf("write length: %w", err)
	}
	if _, err := r.stdin.Write(data); err != nil {
		return nil, fmt.Errorf("write data: %w", err)
	}

	line, err := r.stdout.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var response struct {
		Hands       []jsonHand `json:"hands"`
		TimestampMs int64      `json:"timestamp_ms"`
	}
	if err := json.Unmarshal([]byte(line), &response); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	result := &Frame{
		Landmarks:   make([]Landmarks, 0, len(response.Hands)),
		Handedness:  make([]string, 0, len(response.Hands)),
		Gestures:    make([]string, 0, len(response.Hands)),
		TimestampMs: response.TimestampMs,
	}
	for _, h := range response.Hands {
		result.Landmarks = append(result.Landmarks, h.toLandmarks())
		result.Handedness = append(result.Handedness, strings.ToLower(h.Handedness))
		result.Gestures = append(result.Gestures, h.Gesture)
	}

	r.resetIdleTimer()
	return result, nil
}

// Close shuts down the Python process.
func (r *MediaPipeRecognizer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shutdown()
}

func (r *MediaPipeRecognizer) ensureStarted() error {
	if r.started {
		return nil
	}

	scriptPath := findServiceScript()
	if scriptPath == "" {
		return fmt.Errorf("gesture_service.py not found")
	}

	pythonPath := findVenvPython()
	if pythonPath == "" {
		pythonPath = "python3"
	}

	r.cmd = exec.Command(pythonPath, scriptPath,
		fmt.Sprintf("--max-hands=%d", r.config.MaxHands),
		fmt.Sprintf("--min-confidence=%f", r.config.MinConfidence))

	stdin, err := r.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("create stdin pipe: %w", err)
	}

	stdout, err := r.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("create stdout pipe: %w", err)
	}

	// Capture stderr for debugging.
	r.cmd.Stderr = os.Stderr

	if err := r.cmd.Start(); err != nil {
		return fmt.Errorf("start gesture service: %w", err)
	}

	r.stdin = stdin
	r.stdout = bufio.NewReader(stdout)
	r.started = true

	return nil
}

func (r *MediaPipeRecognizer) shutdown() error {
	if !r.started {
		return nil
	}

	if r.idleTimer != nil {
		r.idleTimer.Stop()
		r.idleTimer = nil
	}

	if r.stdin != nil {
		r.stdin.Close()
	}

	err := r.cmd.Wait()
	r.started = false
	r.cmd = nil
	r.stdin = nil
	r.stdout = nil

	return err
}

func (r *MediaPipeRecognizer) resetIdleTimer() {
	if r.idleTimer != nil {
		r.idleTimer.Stop()
	}
	r.idleTimer = time.AfterFunc(idleShutdown, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.shutdown()
	})
}

// findServiceScript locates gesture_service.py near the executable, the
// working directory or the user's ~/.mudra install.
func findServiceScript() string {
	execPath, err := os.Executable()
	var execDir string
	if err == nil {
		execDir = filepath.Dir(execPath)
	}

	candidates := []string{
		"scripts/gesture_service.py",
		"../scripts/gesture_service.py",
		filepath.Join(execDir, "scripts/gesture_service.py"),
		filepath.Join(os.Getenv("HOME"), ".mudra/scripts/gesture_service.py"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			if absPath, err := filepath.Abs(path); err == nil {
				return absPath
			}
			return path
		}
	}
	return ""
}

// findVenvPython looks for a Python interpreter in a virtual environment
// relative to the executable or the user's ~/.mudra install.
func findVenvPython() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}
	execDir := filepath.Dir(execPath)

	candidates := []string{
		"venv/bin/python",
		"../venv/bin/python",
		filepath.Join(execDir, "venv/bin/python"),
		filepath.Join(os.Getenv("HOME"), ".mudra/venv/bin/python"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			if absPath, err := filepath.Abs(path); err == nil {
				return absPath
			}
			return path
		}
	}
	return ""
}

// jsonHand represents one hand in the JSON structure from the Python
// service.
type jsonHand struct {
	Points     []Point3D `json:"points"`
	Handedness string    `json:"handedness"`
	Gesture    string    `json:"gesture"`
	Score      float64   `json:"score"`
}

func (h jsonHand) toLandmarks() Landmarks {
	var lm Landmarks
	for i := 0; i < NumLandmarks && i < len(h.Points); i++ {
		lm[i] = h.Points[i]
	}
	return lm
}
