// Package web содержит встроенный веб-клиент (одностраничное приложение).
// Статические файлы компилируются в бинарник через go:embed и раздаются
// тем же сервером, что и REST API.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFiles embed.FS

// Handler возвращает HTTP-обработчик, раздающий файлы клиента.
// Корневой путь отдает index.html.
func Handler() http.Handler {
	// Срезаем префикс "static", чтобы index.html лежал в корне.
	// Ошибка невозможна: имя каталога задано константой и каталог встроен при сборке.
	sub, _ := fs.Sub(staticFiles, "static")
	return http.FileServer(http.FS(sub))
}
