// embed.go - 资源嵌入声明
// 必须放在模块根目录（与 data/ 同级），
// 因为 //go:embed 指令只能嵌入当前包目录及其子目录的文件
package digdown

import (
	"embed"

	"github.com/gonewx/digdown/pkg/embedded"
)

//go:embed data/terrain.yaml data/effects.yaml
var dataFS embed.FS

func init() {
	embedded.Init(dataFS)
}
