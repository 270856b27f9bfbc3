// Package query translates normalized listing parameters into the driver's
// filter, sort, projection and pagination options.
package query

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dmaia/sweetshop/internal/core/listing"
)

var operators = map[listing.Op]string{
	listing.OpGT:  "$gt",
	listing.OpGTE: "$gte",
	listing.OpLT:  "$lt",
	listing.OpLTE: "$lte",
}

// Build assumes params came out of listing.Parse and are already validated.
func Build(params listing.Params) (bson.M, *options.FindOptions) {
	return BuildFilter(params.Filters), BuildOptions(params)
}

func BuildFilter(filters []listing.Filter) bson.M {
	filter := bson.M{}
	for _, clause := range filters {
		if clause.Op == listing.OpEq {
			filter[clause.Field] = clause.Value
			continue
		}
		// price[gte]=10&price[lte]=20 must merge into one field document
		comparisons, ok := filter[clause.Field].(bson.M)
		if !ok {
			comparisons = bson.M{}
			filter[clause.Field] = comparisons
		}
		comparisons[operators[clause.Op]] = clause.Value
	}
	return filter
}

func BuildOptions(params listing.Params) *options.FindOptions {
	opts := options.Find().
		SetSort(buildSort(params.Sort)).
		SetSkip(params.Skip()).
		SetLimit(params.Limit)

	if len(params.Fields) > 0 {
		projection := bson.M{}
		for _, field := range params.Fields {
			projection[field] = 1
		}
		opts.SetProjection(projection)
	} else {
		// creationDate is bookkeeping; hidden unless explicitly requested
		opts.SetProjection(bson.M{"creationDate": 0})
	}

	return opts
}

// buildSort appends _id as the final key so pages stay stable when sort-key
// values collide.
func buildSort(keys []listing.SortKey) bson.D {
	sort := bson.D{}
	hasID := false
	for _, key := range keys {
		direction := 1
		if key.Desc {
			direction = -1
		}
		if key.Field == "_id" {
			hasID = true
		}
		sort = append(sort, bson.E{Key: key.Field, Value: direction})
	}
	if !hasID {
		sort = append(sort, bson.E{Key: "_id", Value: 1})
	}
	return sort
}
