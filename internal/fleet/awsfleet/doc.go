// Package awsfleet implements fleet.DataSource on the AWS SDK for Go v2.
//
// Core devices and deployments come from Greengrass V2, thing groups from
// IoT Core. Every listing is paginated to completion and sorted by name,
// case-insensitively. Deployments are listed with the LATEST_ONLY history
// filter, so each deployment appears once at its newest revision.
//
// New performs a cheap authenticated probe so that an expired SSO session is
// reported before the dashboard takes over the terminal:
//
//	src, err := awsfleet.New(ctx, "iotmgmt_prod", "eu-west-1")
//	if err != nil {
//	    // *fleet.SourceError: dispatch, service or other
//	}
package awsfleet
