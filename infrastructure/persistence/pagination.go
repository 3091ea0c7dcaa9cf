package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"videotube/domain/apperror"
	"videotube/domain/dto"
)

// paginateStage appends a $facet that counts the filtered set and slices
// the requested window in one round trip, mirroring the store's
// query/paginate primitive. totalItems is counted before truncation.
func paginateStage(req dto.PageRequest) bson.D {
	return bson.D{{Key: "$facet", Value: bson.D{
		{Key: "metadata", Value: bson.A{
			bson.D{{Key: "$count", Value: "total"}},
		}},
		{Key: "data", Value: bson.A{
			bson.D{{Key: "$skip", Value: req.Offset()}},
			bson.D{{Key: "$limit", Value: req.Limit}},
		}},
	}}}
}

type facetCount struct {
	Total int64 `bson:"total"`
}

type facetResult[T any] struct {
	Metadata []facetCount `bson:"metadata"`
	Data     []T          `bson:"data"`
}

// aggregatePaginate runs pipeline with a trailing paginate facet and shapes
// the result into the page envelope. Pages past the end decode into an
// empty item slice, not an error.
func aggregatePaginate[T any](ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline, req dto.PageRequest) (dto.Page[T], error) {
	var zero dto.Page[T]
	cursor, err := coll.Aggregate(ctx, append(pipeline, paginateStage(req)))
	if err != nil {
		return zero, apperror.Wrap(err, apperror.KindUpstream, "aggregate query failed")
	}
	defer func() { _ = cursor.Close(ctx) }()

	var results []facetResult[T]
	if err := cursor.All(ctx, &results); err != nil {
		return zero, apperror.Wrap(err, apperror.KindUpstream, "decoding aggregate result failed")
	}
	if len(results) == 0 {
		return dto.NewPage[T](nil, req, 0), nil
	}
	var total int64
	if len(results[0].Metadata) > 0 {
		total = results[0].Metadata[0].Total
	}
	return dto.NewPage(results[0].Data, req, total), nil
}

// aggregateAll runs pipeline without pagination and decodes every record.
func aggregateAll[T any](ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline) ([]T, error) {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.KindUpstream, "aggregate query failed")
	}
	defer func() { _ = cursor.Close(ctx) }()

	var out []T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, apperror.Wrap(err, apperror.KindUpstream, "decoding aggregate result failed")
	}
	return out, nil
}
