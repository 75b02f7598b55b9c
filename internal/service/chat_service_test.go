package service

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type generatorFunc func(ctx context.Context, prompt string) (string, error)

func (f generatorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

var _ = Describe("ChatService", func() {
	It("returns the generated text", func() {
		var got string
		s := NewChatService(generatorFunc(func(_ context.Context, prompt string) (string, error) {
			got = prompt
			return "Hi there!", nil
		}), 0)

		Expect(s.Reply(context.Background(), "Hello")).To(Equal("Hi there!"))
		Expect(got).To(Equal("Hello"))
	})

	DescribeTable("falls back when the model returns no text",
		func(text string) {
			s := NewChatService(generatorFunc(func(context.Context, string) (string, error) {
				return text, nil
			}), 0)
			Expect(s.Reply(context.Background(), "Hello")).To(Equal(FallbackResponse))
		},
		Entry("empty", ""),
		Entry("whitespace", " \n\t"),
	)

	It("classifies generator failures as upstream errors", func() {
		s := NewChatService(generatorFunc(func(context.Context, string) (string, error) {
			return "", errors.New("quota exceeded")
		}), 0)

		_, err := s.Reply(context.Background(), "Hello")
		Expect(err).To(MatchError("quota exceeded"))
		Expect(KindOf(err)).To(Equal(KindUpstream))
	})

	It("rejects an empty message without calling the generator", func() {
		called := false
		s := NewChatService(generatorFunc(func(context.Context, string) (string, error) {
			called = true
			return "", nil
		}), 0)

		_, err := s.Reply(context.Background(), "")
		Expect(err).To(MatchError(ErrMessageRequired))
		Expect(KindOf(err)).To(Equal(KindRequest))
		Expect(called).To(BeFalse())
	})

	It("bounds the generator call with the configured timeout", func() {
		s := NewChatService(generatorFunc(func(ctx context.Context, _ string) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		}), 20*time.Millisecond)

		_, err := s.Reply(context.Background(), "Hello")
		Expect(err).To(MatchError(context.DeadlineExceeded))
		Expect(KindOf(err)).To(Equal(KindUpstream))
	})
})

var _ = Describe("ErrorKind", func() {
	It("names each kind", func() {
		Expect(KindRequest.String()).To(Equal("request"))
		Expect(KindUpstream.String()).To(Equal("upstream"))
		Expect(ErrorKind(9).String()).To(Equal("ErrorKind(9)"))
	})

	It("treats unclassified errors as upstream", func() {
		Expect(KindOf(errors.New("boom"))).To(Equal(KindUpstream))
	})
})
