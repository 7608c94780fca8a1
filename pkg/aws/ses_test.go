package aws_test

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	awsclient "github.com/younsl/amireport/pkg/aws"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SESMailer", func() {
	var (
		fake   *fakeSES
		mailer *awsclient.SESMailer
		msg    awsclient.Message
	)

	BeforeEach(func() {
		fake = &fakeSES{out: &ses.SendEmailOutput{MessageId: aws.String("msg-1")}}
		mailer = awsclient.NewSESMailerWithAPI(fake)
		msg = awsclient.Message{
			From: "reports@example.com",
			To:   "ops@example.com",
			Text: "line 1\nline 2",
			HTML: "line 1<br>line 2",
		}
	})

	It("sends text and HTML bodies with the default subject", func() {
		id, err := mailer.Send(context.Background(), msg)
		Expect(err).ToNot(HaveOccurred())
		Expect(id).To(Equal("msg-1"))

		Expect(aws.ToString(fake.input.Source)).To(Equal("reports@example.com"))
		Expect(fake.input.Destination.ToAddresses).To(Equal([]string{"ops@example.com"}))
		Expect(aws.ToString(fake.input.Message.Subject.Data)).To(Equal(awsclient.DefaultSubject))
		Expect(aws.ToString(fake.input.Message.Body.Text.Data)).To(Equal("line 1\nline 2"))
		Expect(aws.ToString(fake.input.Message.Body.Html.Data)).To(Equal("line 1<br>line 2"))
		Expect(aws.ToString(fake.input.Message.Body.Html.Charset)).To(Equal("UTF-8"))
		Expect(fake.input.Tags).To(BeEmpty())
	})

	It("uses a custom subject when given", func() {
		msg.Subject = "Weekly AMI ages"
		_, err := mailer.Send(context.Background(), msg)
		Expect(err).ToNot(HaveOccurred())
		Expect(aws.ToString(fake.input.Message.Subject.Data)).To(Equal("Weekly AMI ages"))
	})

	It("tags the message with the run id", func() {
		_, err := mailer.Send(context.Background(), awsclient.Message{
			From:  "reports@example.com",
			To:    "ops@example.com",
			RunID: "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(fake.input.Tags).To(HaveLen(1))
		Expect(aws.ToString(fake.input.Tags[0].Name)).To(Equal(awsclient.RunIDTag))
		Expect(aws.ToString(fake.input.Tags[0].Value)).To(Equal("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	})

	It("refuses to send without addresses", func() {
		msg.To = ""
		_, err := mailer.Send(context.Background(), msg)
		Expect(err).To(MatchError(awsclient.ErrMissingAddress))
		Expect(fake.input).To(BeNil())
	})

	It("wraps delivery errors", func() {
		cause := errors.New("MessageRejected")
		fake.err = cause
		_, err := mailer.Send(context.Background(), msg)
		Expect(err).To(MatchError(cause))
	})
})
