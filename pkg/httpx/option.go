package httpx

type Option func(*LoggingRoundTripper)

func WithLogFieldMaxLen(logFieldMaxLen int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = logFieldMaxLen
	}
}

func WithSensitiveDataMasker(sensitiveDataMasker sensitiveDataMasker) Option {
	return func(rt *LoggingRoundTripper) {
		rt.sensitiveDataMasker = sensitiveDataMasker
	}
}

// WithoutResponseBody keeps only the status line and headers of responses,
// for upstreams whose payloads carry mailbox content.
func WithoutResponseBody() Option {
	return func(rt *LoggingRoundTripper) {
		rt.dumpResponseBody = false
	}
}
