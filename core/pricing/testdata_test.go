package pricing

import (
	"fmt"

	"tfcost/core/catalog"
	"tfcost/core/types"
)

// priceDoc builds a minimal Price List product document with one term and
// one price dimension.
func priceDoc(unit, usd string) string {
	return fmt.Sprintf(`{
  "product": {"sku": "SKU1", "productFamily": "Compute Instance"},
  "serviceCode": "AmazonEC2",
  "terms": {
    "OnDemand": {
      "SKU1.JRTCKXETXF": {
        "sku": "SKU1",
        "offerTermCode": "JRTCKXETXF",
        "priceDimensions": {
          "SKU1.JRTCKXETXF.6YS6EN2CT7": {
            "unit": %q,
            "description": "test rate",
            "pricePerUnit": {"USD": %q}
          }
        }
      }
    }
  }
}`, unit, usd)
}

func ec2(instanceType string, count int) types.NormalizedResource {
	return types.NormalizedResource{
		Kind:         types.KindEC2,
		Name:         "web",
		ResourceType: "aws_instance",
		ServiceCode:  "AmazonEC2",
		Specs: types.EC2Specs{
			InstanceType: instanceType,
			Count:        count,
			Storage:      types.Storage{SizeGB: 8, VolumeType: "gp2"},
		},
	}
}

func testTables() *catalog.Tables {
	return catalog.Default()
}
