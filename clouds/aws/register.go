// Package aws - AWS resource builder registration
package aws

import (
	"tfcost/clouds/aws/compute"
	"tfcost/clouds/aws/database"
	"tfcost/clouds/aws/serverless"
	"tfcost/clouds/aws/storage"
	"tfcost/core/catalog"
)

// Builders returns the builders for every recognized resource kind
func Builders(tables *catalog.Tables) []Builder {
	return []Builder{
		// Compute
		compute.NewEC2Builder(),

		// Database
		database.NewRDSBuilder(tables),
		database.NewDynamoDBBuilder(),

		// Serverless
		serverless.NewLambdaBuilder(),

		// Storage
		storage.NewS3Builder(),
	}
}
