package store

import (
	"context"
	"encoding/json"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// The three collections this service mirrors.
const (
	CollectionIngredients = "ingredients"
	CollectionMenuItems   = "menuItems"
	CollectionSales       = "sales"
)

// Connect opens a Firestore client for the given project. Credentials come
// from the ambient GOOGLE_APPLICATION_CREDENTIALS environment.
func Connect(ctx context.Context, projectID string) (*firestore.Client, error) {
	return firestore.NewClient(ctx, projectID)
}

// Store wraps the Firestore client behind the small surface the rest of the
// service needs: upsert / merge-update / delete plus snapshot subscriptions.
type Store struct {
	client *firestore.Client
}

func New(client *firestore.Client) *Store {
	return &Store{client: client}
}

// Document is one document from a collection snapshot.
type Document struct {
	ID   string
	snap *firestore.DocumentSnapshot
	body any
}

// DataTo decodes the document body into v. The document id is not part of
// the body; read it from ID.
func (d Document) DataTo(v any) error {
	if d.snap != nil {
		return d.snap.DataTo(v)
	}

	raw, err := json.Marshal(d.body)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// NewDocument builds a detached document, used by in-memory fakes.
func NewDocument(id string, body any) Document {
	return Document{ID: id, body: body}
}

// Upsert writes doc at the given id, creating the document with a generated
// id when id is empty. Returns the id actually written.
func (s *Store) Upsert(ctx context.Context, collection, id string, doc any) (string, error) {
	col := s.client.Collection(collection)

	ref := col.NewDoc()
	if id != "" {
		ref = col.Doc(id)
	}

	if _, err := ref.Set(ctx, doc); err != nil {
		return "", Classify(err)
	}
	return ref.ID, nil
}

// Update merges fields into an existing document.
func (s *Store) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	_, err := s.client.Collection(collection).Doc(id).Set(ctx, fields, firestore.MergeAll)
	return Classify(err)
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	_, err := s.client.Collection(collection).Doc(id).Delete(ctx)
	return Classify(err)
}

// Subscribe delivers the full current set of documents in the collection on
// every change. The sales collection is additionally ordered descending by
// timestamp. The returned stop function cancels delivery and releases the
// iterator; after stop returns no further callbacks fire for new snapshots.
func (s *Store) Subscribe(
	ctx context.Context,
	collection string,
	onSnapshot func([]Document),
	onError func(error),
) (stop func()) {

	query := s.client.Collection(collection).Query
	if collection == CollectionSales {
		query = query.OrderBy("timestamp", firestore.Desc)
	}

	ctx, cancel := context.WithCancel(ctx)
	it := query.Snapshots(ctx)

	go func() {
		defer it.Stop()

		for {
			qs, err := it.Next()
			if err != nil {
				if errors.Is(err, context.Canceled) || status.Code(err) == codes.Canceled {
					return
				}
				onError(Classify(err))
				return
			}

			docs := make([]Document, 0, qs.Size)
			dit := qs.Documents
			for {
				d, err := dit.Next()
				if err == iterator.Done {
					break
				}
				if err != nil {
					onError(Classify(err))
					return
				}
				docs = append(docs, Document{ID: d.Ref.ID, snap: d})
			}

			onSnapshot(docs)
		}
	}()

	return cancel
}
