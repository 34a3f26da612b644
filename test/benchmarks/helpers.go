// test/benchmarks/helpers.go
package benchmarks

import (
	"fmt"
	"strings"
)

// upstreamProductPayload builds a wrapped upstream response with numRows
// product rows, in the shape the dashboard sees from the commerce API.
func upstreamProductPayload(numRows int) []byte {
	var b strings.Builder
	b.WriteString(`{"status":"ok","total_count":`)
	fmt.Fprintf(&b, "%d", numRows)
	b.WriteString(`,"page":1,"data":[`)

	names := []string{
		"Linen Wrap Dress", "Canvas Tote Bag", "Suede Ankle Boots",
		"Wool Blend Coat", "Silk Neck Scarf", "Leather Belt",
		"Denim Jacket", "Knit Cardigan", "Pleated Midi Skirt",
		"Cotton Oxford Shirt",
	}

	for i := 0; i < numRows; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b,
			`{"id":"prod-%04d","title":"%s","price_cents":%d,"stock":%d,"category":"apparel"}`,
			i, names[i%len(names)], 1500+i*25, i%40)
	}

	b.WriteString(`]}`)
	return []byte(b.String())
}

// deepEnvelopePayload nests the row array several levels down, the worst case
// for array location.
func deepEnvelopePayload(numRows int) []byte {
	inner := upstreamProductPayload(numRows)
	return []byte(`{"status":"ok","result":{"response":` + string(inner) + `}}`)
}
