package awsfleet

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/greengrassv2"
	ggtypes "github.com/aws/aws-sdk-go-v2/service/greengrassv2/types"
	"github.com/aws/aws-sdk-go-v2/service/iot"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/muurk/elysium/internal/fleet"
	"github.com/muurk/elysium/internal/logging"
)

// DefaultRegion is used when neither the caller nor the SDK default chain
// provide a region.
const DefaultRegion = "eu-west-1"

// greengrassAPI is the subset of the Greengrass V2 client used here.
type greengrassAPI interface {
	ListComponents(ctx context.Context, params *greengrassv2.ListComponentsInput, optFns ...func(*greengrassv2.Options)) (*greengrassv2.ListComponentsOutput, error)
	greengrassv2.ListCoreDevicesAPIClient
	greengrassv2.ListDeploymentsAPIClient
}

// iotAPI is the subset of the IoT Core client used here.
type iotAPI interface {
	iot.ListThingGroupsAPIClient
}

// Source lists Greengrass and IoT Core resources of one account and region.
// It implements fleet.DataSource and must be wrapped in fleet.Shared when
// used from more than one goroutine.
type Source struct {
	// Profile is the shared config profile the clients were built from
	Profile string
	// Region is the resolved AWS region
	Region string

	gg  greengrassAPI
	iot iotAPI

	data map[fleet.Category]fleet.Rows
}

// New loads the AWS configuration for profile and region, then probes the
// Greengrass API with a single-item ListComponents call so that expired
// credentials fail here instead of inside the dashboard.
//
// An empty region defers to the SDK default chain (AWS_REGION, profile
// setting) and finally DefaultRegion.
func New(ctx context.Context, profile, region string) (*Source, error) {
	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, &fleet.SourceError{
			Type:      fleet.ErrTypeOther,
			Operation: "LoadDefaultConfig",
			Message:   fmt.Sprintf("cannot load AWS config for profile %q", profile),
			Err:       err,
		}
	}
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}

	logging.Info("AWS config loaded",
		zap.String("profile", profile),
		zap.String("region", cfg.Region),
	)

	src := newSource(greengrassv2.NewFromConfig(cfg), iot.NewFromConfig(cfg))
	src.Profile = profile
	src.Region = cfg.Region

	if err := src.probe(ctx); err != nil {
		return nil, err
	}
	return src, nil
}

func newSource(gg greengrassAPI, iotClient iotAPI) *Source {
	return &Source{
		gg:   gg,
		iot:  iotClient,
		data: make(map[fleet.Category]fleet.Rows, len(fleet.Categories)),
	}
}

// probe verifies that credentials are valid and the service is reachable.
func (s *Source) probe(ctx context.Context) error {
	_, err := s.gg.ListComponents(ctx, &greengrassv2.ListComponentsInput{
		MaxResults: aws.Int32(1),
	})
	if err != nil {
		return classify(err, "ListComponents")
	}
	return nil
}

// Load fetches all categories concurrently. Snapshots are only replaced when
// every fetch succeeded, so a failed refresh leaves the previous data intact.
func (s *Source) Load(ctx context.Context) error {
	var devices, groups, deployments fleet.Rows

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.listCoreDevices(gctx)
		devices = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.listThingGroups(gctx)
		groups = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.listDeployments(gctx)
		deployments = rows
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	s.data[fleet.CoreDevices] = devices
	s.data[fleet.ThingGroups] = groups
	s.data[fleet.Deployments] = deployments
	return nil
}

// Snapshot implements fleet.DataSource.
func (s *Source) Snapshot(c fleet.Category) fleet.Rows {
	return s.data[c]
}

func (s *Source) listCoreDevices(ctx context.Context) (fleet.Rows, error) {
	start := time.Now()
	rows := fleet.Rows{}
	pages := 0

	p := greengrassv2.NewListCoreDevicesPaginator(s.gg, &greengrassv2.ListCoreDevicesInput{})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, classify(err, "ListCoreDevices")
		}
		pages++
		for _, d := range out.CoreDevices {
			rows = append(rows, fleet.Row{
				aws.ToString(d.CoreDeviceThingName),
				string(d.Status),
				timestamp(d.LastStatusUpdateTimestamp),
			})
		}
	}

	fleet.SortByName(rows)
	logging.LogAPICall("greengrassv2", "ListCoreDevices", pages, len(rows), time.Since(start))
	return rows, nil
}

func (s *Source) listThingGroups(ctx context.Context) (fleet.Rows, error) {
	start := time.Now()
	rows := fleet.Rows{}
	pages := 0

	p := iot.NewListThingGroupsPaginator(s.iot, &iot.ListThingGroupsInput{})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, classify(err, "ListThingGroups")
		}
		pages++
		for _, g := range out.ThingGroups {
			rows = append(rows, fleet.Row{
				aws.ToString(g.GroupName),
				aws.ToString(g.GroupArn),
			})
		}
	}

	fleet.SortByName(rows)
	logging.LogAPICall("iot", "ListThingGroups", pages, len(rows), time.Since(start))
	return rows, nil
}

func (s *Source) listDeployments(ctx context.Context) (fleet.Rows, error) {
	start := time.Now()
	rows := fleet.Rows{}
	pages := 0

	p := greengrassv2.NewListDeploymentsPaginator(s.gg, &greengrassv2.ListDeploymentsInput{
		HistoryFilter: ggtypes.DeploymentHistoryFilterLatestOnly,
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, classify(err, "ListDeployments")
		}
		pages++
		for _, d := range out.Deployments {
			rows = append(rows, fleet.Row{
				aws.ToString(d.DeploymentName),
				string(d.DeploymentStatus),
				timestamp(d.CreationTimestamp),
			})
		}
	}

	fleet.SortByName(rows)
	logging.LogAPICall("greengrassv2", "ListDeployments", pages, len(rows), time.Since(start))
	return rows, nil
}

func timestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
