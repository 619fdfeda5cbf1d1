/*
Package snapshot は、デバイス上の設定スナップショットを一覧し、ロールバックするパッケージです。
*/
package snapshot

import (
	"context"
	"encoding/xml"
	"strconv"
	"time"

	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/management"
	"github.com/aptpod/devmgmt-go/message"
)

// Appは、スナップショットを管理するデバイスアプリケーションです。
var App = management.Application{Name: "CONF-V1", Version: "1.0"}

const (
	// ResourceSnapshotsは、スナップショットを表すリソース名です。
	ResourceSnapshots = "snapshots"

	// ParameterSnapshotIDは、スナップショットIDのパラメータ名です。
	ParameterSnapshotID = "snapshotId"
)

const (
	KindGet      errors.ManagementErrorKind = "snapshot.get"
	KindRollback errors.ManagementErrorKind = "snapshot.rollback"
)

// Snapshotsは、デバイスが保持するスナップショットIDの一覧です。
type Snapshots struct {
	XMLName xml.Name `xml:"snapshot-ids"`
	IDs     []int64  `xml:"snapshotId"`
}

// Latestは、最も新しいスナップショットIDを返却します。
func (s *Snapshots) Latest() (int64, bool) {
	if len(s.IDs) == 0 {
		return 0, false
	}
	latest := s.IDs[0]
	for _, id := range s.IDs[1:] {
		if id > latest {
			latest = id
		}
	}
	return latest, true
}

// Serviceは、デバイスのスナップショットを操作します。
type Service struct {
	svc *management.Service
}

// Newは、Serviceを生成します。
func New(svc *management.Service) *Service {
	return &Service{svc: svc}
}

// Getは、デバイスのスナップショットIDの一覧を取得します。
func (s *Service) Get(ctx context.Context, scopeID, deviceID string, timeout time.Duration) (*Snapshots, error) {
	res, err := management.Read[Snapshots](ctx, s.svc, management.Call{
		ScopeID:  scopeID,
		DeviceID: deviceID,
		Operation: management.Operation{
			Application: App,
			Method:      message.MethodRead,
			Action:      management.ActionRead,
			Parameters:  map[string]string{management.ParameterResource: ResourceSnapshots},
			Kind:        KindGet,
		},
		Timeout: timeout,
	}, management.XMLCodec[Snapshots]{})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Rollbackは、デバイスの設定を指定したスナップショットへ戻します。
func (s *Service) Rollback(ctx context.Context, scopeID, deviceID, snapshotID string, timeout time.Duration) error {
	return s.svc.Execute(ctx, management.Call{
		ScopeID:  scopeID,
		DeviceID: deviceID,
		Operation: management.Operation{
			Application: App,
			Method:      message.MethodExecute,
			Action:      management.ActionExecute,
			Parameters: map[string]string{
				management.ParameterResource: ResourceSnapshots,
				ParameterSnapshotID:          snapshotID,
			},
			Required: []string{ParameterSnapshotID},
			Kind:     KindRollback,
		},
		Timeout: timeout,
	})
}

// RollbackToは、数値のスナップショットIDを指定してRollbackを呼び出します。
func (s *Service) RollbackTo(ctx context.Context, scopeID, deviceID string, id int64, timeout time.Duration) error {
	return s.Rollback(ctx, scopeID, deviceID, strconv.FormatInt(id, 10), timeout)
}
