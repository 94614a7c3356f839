// Package report provides ready-made failure callbacks for guard and valid:
// structured logging through zap, an in-memory Recorder, and Tee to combine
// several callbacks.
package report
