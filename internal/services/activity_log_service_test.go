package services

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestActivityLogService_LogActivity(t *testing.T) {
	ctx := context.Background()

	t.Run("grava o registro com timestamp UTC do momento da chamada", func(t *testing.T) {
		repo := &fakeActivityLogRepo{}
		svc := NewActivityLogService(repo, nil, nopLogger{})

		before := time.Now().UTC()
		logged, err := svc.LogActivity(ctx, 3, "maria", "create", "User", 10, "created user Maria")
		after := time.Now().UTC()

		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if logged.ID == 0 {
			t.Error("esperava id atribuído")
		}
		if logged.Timestamp.Before(before) || logged.Timestamp.After(after) {
			t.Errorf("timestamp %v fora da janela [%v, %v]", logged.Timestamp, before, after)
		}
		if logged.Timestamp.Location() != time.UTC {
			t.Errorf("esperava timestamp em UTC, obteve %v", logged.Timestamp.Location())
		}
	})

	t.Run("publica o registro gravado no feed", func(t *testing.T) {
		repo := &fakeActivityLogRepo{}
		publisher := &fakePublisher{}
		svc := NewActivityLogService(repo, publisher, nopLogger{})

		logged, err := svc.LogActivity(ctx, 3, "maria", "delete", "Form", 8, "")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if len(publisher.events) != 1 {
			t.Fatalf("esperava 1 evento publicado, obteve %d", len(publisher.events))
		}
		if publisher.events[0].ID != logged.ID {
			t.Errorf("evento publicado deve carregar o id gravado %d, obteve %d", logged.ID, publisher.events[0].ID)
		}
	})

	t.Run("falha de storage não publica e propaga o erro", func(t *testing.T) {
		boom := errors.New("disk full")
		repo := &fakeActivityLogRepo{err: boom}
		publisher := &fakePublisher{}
		svc := NewActivityLogService(repo, publisher, nopLogger{})

		_, err := svc.LogActivity(ctx, 3, "maria", "update", "Rol", 1, "")
		if !errors.Is(err, boom) {
			t.Fatalf("esperava o erro do storage, obteve %v", err)
		}
		if len(publisher.events) != 0 {
			t.Error("registro não gravado não deve ir para o feed")
		}
	})
}

func TestActivityLogService_Listagens(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, svc *ActivityLogService, n int) {
		t.Helper()
		for i := 0; i < n; i++ {
			if _, err := svc.LogActivity(ctx, int64(i%2+1), "maria", "create", "User", int64(i+1), ""); err != nil {
				t.Fatalf("falha ao semear registros: %v", err)
			}
		}
	}

	t.Run("GetRecent retorna os mais recentes primeiro", func(t *testing.T) {
		repo := &fakeActivityLogRepo{}
		svc := NewActivityLogService(repo, nil, nopLogger{})
		seed(t, svc, 3)

		rows, err := svc.GetRecent(ctx, 2, 0)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("esperava 2 registros, obteve %d", len(rows))
		}
		if rows[0].ID != 3 || rows[1].ID != 2 {
			t.Errorf("esperava ids [3 2], obteve [%d %d]", rows[0].ID, rows[1].ID)
		}
	})

	t.Run("limit não positivo usa o tamanho de página padrão", func(t *testing.T) {
		repo := &fakeActivityLogRepo{}
		svc := NewActivityLogService(repo, nil, nopLogger{})
		seed(t, svc, defaultLogPageSize+5)

		rows, err := svc.GetRecent(ctx, 0, 0)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if len(rows) != defaultLogPageSize {
			t.Errorf("esperava %d registros, obteve %d", defaultLogPageSize, len(rows))
		}
	})

	t.Run("GetByUser isola os registros do usuário", func(t *testing.T) {
		repo := &fakeActivityLogRepo{}
		svc := NewActivityLogService(repo, nil, nopLogger{})
		seed(t, svc, 4)

		rows, err := svc.GetByUser(ctx, 1, 0, 0)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		for _, row := range rows {
			if row.UserID != 1 {
				t.Errorf("esperava só registros do usuário 1, obteve user_id %d", row.UserID)
			}
		}
		if len(rows) != 2 {
			t.Errorf("esperava 2 registros, obteve %d", len(rows))
		}
	})

	t.Run("GetByID retorna nil sem erro para registro inexistente", func(t *testing.T) {
		repo := &fakeActivityLogRepo{}
		svc := NewActivityLogService(repo, nil, nopLogger{})

		got, err := svc.GetByID(ctx, 99)
		if err != nil {
			t.Fatalf("ausência não é erro, obteve: %v", err)
		}
		if got != nil {
			t.Errorf("esperava nil, obteve %+v", got)
		}
	})
}

func TestClampPage(t *testing.T) {
	cases := []struct {
		name                  string
		limit, offset         int
		wantLimit, wantOffset int
	}{
		{"limite zero vira padrão", 0, 10, defaultLogPageSize, 10},
		{"limite negativo vira padrão", -3, 0, defaultLogPageSize, 0},
		{"limite acima do teto é cortado", 10000, 0, maxLogPageSize, 0},
		{"offset negativo vira zero", 20, -1, 20, 0},
		{"valores válidos passam intactos", 20, 40, 20, 40},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotLimit, gotOffset := clampPage(tc.limit, tc.offset)
			if gotLimit != tc.wantLimit || gotOffset != tc.wantOffset {
				t.Errorf("clampPage(%d, %d) = (%d, %d); esperava (%d, %d)",
					tc.limit, tc.offset, gotLimit, gotOffset, tc.wantLimit, tc.wantOffset)
			}
		})
	}
}
