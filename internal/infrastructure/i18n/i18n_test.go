package i18n

import (
	"sync"
	"testing"
	"testing/fstest"
)

// setupTestLocales monta um filesystem em memória com traduções de teste
func setupTestLocales() fstest.MapFS {
	return fstest.MapFS{
		"en.json": &fstest.MapFile{Data: []byte(`{
  "error.not_found.detail": "{{.Resource}} not found",
  "error.conflict.form_module": "The form is already associated with this module",
  "error.internal.title": "Internal Server Error"
}`)},
		"pt-BR.json": &fstest.MapFile{Data: []byte(`{
  "error.not_found.detail": "{{.Resource}} não encontrado",
  "error.conflict.form_module": "O formulário já está associado a este módulo"
}`)},
		"es.json": &fstest.MapFile{Data: []byte(`{
  "error.not_found.detail": "{{.Resource}} no encontrado"
}`)},
	}
}

func TestNewService(t *testing.T) {
	t.Run("carrega traduções com sucesso", func(t *testing.T) {
		service, err := NewService(setupTestLocales(), "en")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if service.GetDefaultLanguage() != "en" {
			t.Errorf("esperava idioma padrão 'en', obteve '%s'", service.GetDefaultLanguage())
		}

		langs := service.GetSupportedLanguages()
		if len(langs) != 3 {
			t.Errorf("esperava 3 idiomas, obteve %d", len(langs))
		}
	})

	t.Run("falha quando idioma padrão não existe", func(t *testing.T) {
		if _, err := NewService(setupTestLocales(), "fr"); err == nil {
			t.Error("esperava erro para idioma padrão inexistente")
		}
	})

	t.Run("falha quando não há arquivos de locale", func(t *testing.T) {
		if _, err := NewService(fstest.MapFS{}, "en"); err == nil {
			t.Error("esperava erro para filesystem vazio")
		}
	})
}

func TestNewDefaultService(t *testing.T) {
	t.Run("carrega locales embutidos", func(t *testing.T) {
		service, err := NewDefaultService("en")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		for _, lang := range []string{"en", "es", "pt-BR"} {
			if !service.IsLanguageSupported(lang) {
				t.Errorf("esperava suporte ao idioma '%s'", lang)
			}
		}
	})
}

func TestT(t *testing.T) {
	service, err := NewService(setupTestLocales(), "en")
	if err != nil {
		t.Fatalf("falha ao criar serviço: %v", err)
	}

	t.Run("traduz chave simples", func(t *testing.T) {
		got := service.T("pt-BR", "error.conflict.form_module")
		want := "O formulário já está associado a este módulo"
		if got != want {
			t.Errorf("esperava '%s', obteve '%s'", want, got)
		}
	})

	t.Run("interpola parâmetros", func(t *testing.T) {
		got := service.T("es", "error.not_found.detail", map[string]interface{}{"Resource": "Usuario"})
		want := "Usuario no encontrado"
		if got != want {
			t.Errorf("esperava '%s', obteve '%s'", want, got)
		}
	})

	t.Run("usa idioma padrão quando chave ausente no idioma pedido", func(t *testing.T) {
		got := service.T("pt-BR", "error.internal.title")
		if got != "Internal Server Error" {
			t.Errorf("esperava fallback para 'en', obteve '%s'", got)
		}
	})

	t.Run("retorna a chave quando tradução não existe", func(t *testing.T) {
		got := service.T("en", "error.unknown_key")
		if got != "error.unknown_key" {
			t.Errorf("esperava a própria chave, obteve '%s'", got)
		}
	})
}

func TestIsLanguageSupported(t *testing.T) {
	service, err := NewService(setupTestLocales(), "en")
	if err != nil {
		t.Fatalf("falha ao criar serviço: %v", err)
	}

	if !service.IsLanguageSupported("pt-BR") {
		t.Error("esperava 'pt-BR' como suportado")
	}
	if service.IsLanguageSupported("de") {
		t.Error("não esperava 'de' como suportado")
	}
}

func TestConcurrentAccess(t *testing.T) {
	service, err := NewService(setupTestLocales(), "en")
	if err != nil {
		t.Fatalf("falha ao criar serviço: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = service.T("en", "error.not_found.detail", map[string]interface{}{"Resource": "User"})
			_ = service.IsLanguageSupported("es")
			_ = service.GetSupportedLanguages()
		}()
	}
	wg.Wait()
}
