package constants

import "time"

var GenerationConfig = struct {
	Temperature        float32
	DefaultProvider    string
	GeminiDefaultModel string
	OpenAIDefaultModel string
	ResponseMIMEType   string
}{
	Temperature:        0.7,
	DefaultProvider:    "gemini",
	GeminiDefaultModel: "gemini-2.5-flash",
	OpenAIDefaultModel: "gpt-4o-mini",
	ResponseMIMEType:   "application/json",
}

// 환경 변수 이름. 키는 호출 시점에 읽는다.
var CredentialEnv = struct {
	Shared string
	Gemini string
	OpenAI string
}{
	Shared: "API_KEY",
	Gemini: "GEMINI_API_KEY",
	OpenAI: "OPENAI_API_KEY",
}

var AIInputLimits = struct {
	MaxConceptLength int
	MaxNoteLength    int
	MaxFieldLength   int
	PreviewLength    int
}{
	MaxConceptLength: 4000,
	MaxNoteLength:    2000,
	MaxFieldLength:   200,
	PreviewLength:    200, // 디코드 실패 로그용
}

var SlideConfig = struct {
	Count int
}{
	Count: 4,
}

var GuardConfig = struct {
	DefaultTTL time.Duration
	KeyPrefix  string
	GlobalKey  string
}{
	DefaultTTL: 180 * time.Second,
	KeyPrefix:  "personalab:inflight:",
	GlobalKey:  "global",
}

var RedisConfig = struct {
	ReadyTimeout time.Duration
}{
	ReadyTimeout: 5 * time.Second,
}

var ServerConfig = struct {
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
	MaxBodyBytes      int64
	SessionHeader     string
}{
	ReadHeaderTimeout: 10 * time.Second,
	ShutdownTimeout:   10 * time.Second,
	MaxBodyBytes:      1 << 20,
	SessionHeader:     "X-Session-ID",
}

var ExportConfig = struct {
	MaxConcurrentWrites int
	FileMode            uint32
	DirMode             uint32
}{
	MaxConcurrentWrites: 3,
	FileMode:            0o644,
	DirMode:             0o755,
}
