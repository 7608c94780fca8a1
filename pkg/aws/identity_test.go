package aws_test

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	awsclient "github.com/younsl/amireport/pkg/aws"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("GetAccountID", func() {
	It("returns the caller account", func() {
		id, err := awsclient.GetAccountID(context.Background(), &fakeSTS{
			out: &sts.GetCallerIdentityOutput{Account: aws.String("123456789012")},
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(id).To(Equal("123456789012"))
	})

	It("wraps errors", func() {
		_, err := awsclient.GetAccountID(context.Background(), &fakeSTS{err: errors.New("expired")})
		Expect(err).To(MatchError(ContainSubstring("expired")))
	})
})

var _ = Describe("DetectRegion", func() {
	It("returns the metadata region", func() {
		region, err := awsclient.DetectRegion(context.Background(), &fakeIMDS{region: "ap-northeast-2"})
		Expect(err).ToNot(HaveOccurred())
		Expect(region).To(Equal("ap-northeast-2"))
	})

	It("fails off EC2", func() {
		_, err := awsclient.DetectRegion(context.Background(), &fakeIMDS{err: errors.New("no route")})
		Expect(err).To(HaveOccurred())
	})
})
