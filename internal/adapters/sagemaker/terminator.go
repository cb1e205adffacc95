package sagemaker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker/types"
	"github.com/bnema/studio-autostop/internal/domain"
	"github.com/bnema/studio-autostop/internal/ports"
)

var ErrMissingClient = errors.New("sagemaker client is not configured")

type deleteAppAPI interface {
	DeleteApp(ctx context.Context, params *sagemaker.DeleteAppInput, optFns ...func(*sagemaker.Options)) (*sagemaker.DeleteAppOutput, error)
}

// clientFactory builds a DeleteApp client for a region. An empty region
// leaves resolution to the SDK default chain.
type clientFactory func(ctx context.Context, region string) (deleteAppAPI, error)

type Terminator struct {
	newClient clientFactory
}

var _ ports.AppTerminator = (*Terminator)(nil)

func NewTerminator() *Terminator {
	return &Terminator{newClient: defaultClient}
}

func newTerminatorWithFactory(factory clientFactory) *Terminator {
	return &Terminator{newClient: factory}
}

func (t *Terminator) Terminate(ctx context.Context, identity domain.Identity, region string) (domain.TerminationResult, error) {
	result := domain.TerminationResult{Identity: identity, Region: strings.TrimSpace(region)}

	if err := identity.Validate(); err != nil {
		return result, err
	}
	if t.newClient == nil {
		return result, ErrMissingClient
	}

	client, err := t.newClient(ctx, result.Region)
	if err != nil {
		return result, fmt.Errorf("load aws config: %w", err)
	}

	out, err := client.DeleteApp(ctx, &sagemaker.DeleteAppInput{
		DomainId:  aws.String(identity.DomainID),
		SpaceName: aws.String(identity.SpaceName),
		AppType:   types.AppType(identity.AppType),
		AppName:   aws.String(identity.AppName),
	})
	if err != nil {
		return result, fmt.Errorf("delete app %s: %w", identity.AppName, err)
	}

	if out != nil {
		if requestID, ok := awsmiddleware.GetRequestIDMetadata(out.ResultMetadata); ok {
			result.RequestID = requestID
		}
	}

	return result, nil
}

func defaultClient(ctx context.Context, region string) (deleteAppAPI, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return sagemaker.NewFromConfig(cfg), nil
}
