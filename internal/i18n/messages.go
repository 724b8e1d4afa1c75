package i18n

// Key identifies a catalog message.
type Key string

type entry struct {
	en string
	zh string
}

// Message keys
const (
	ErrMissingRationale    Key = "err_missing_rationale"
	ErrRationaleMisplaced  Key = "err_rationale_misplaced"
	ErrRationaleEmpty      Key = "err_rationale_empty"
	ErrRationaleAbsent     Key = "err_rationale_absent"
	ErrUnexpectedRationale Key = "err_unexpected_rationale"
	ErrUnknownCommand      Key = "err_unknown_command"
	ErrFileNotFound        Key = "err_file_not_found"
	ErrToolNotFound        Key = "err_tool_not_found"
	ErrCorruptBlock        Key = "err_corrupt_block"
	ErrDuplicateBlock      Key = "err_duplicate_block"
	ErrSpawnFailed         Key = "err_spawn_failed"
	ErrChildSignaled       Key = "err_child_signaled"
	ErrScriptSource        Key = "err_script_source"
	ErrEmptyStdin          Key = "err_empty_stdin"
	ErrRunEmpty            Key = "err_run_empty"
	ErrUnknownConfigKey    Key = "err_unknown_config_key"
	ErrInvalidConfigValue  Key = "err_invalid_config_value"
	ErrChecksumMismatch    Key = "err_checksum_mismatch"
	ErrUnsupportedPlatform Key = "err_unsupported_platform"
	ErrDevBuild            Key = "err_dev_build"
	ErrUninstallFailed     Key = "err_uninstall_failed"

	HintRationale       Key = "hint_rationale"
	HintDropRationale   Key = "hint_drop_rationale"
	HintConfigureTool   Key = "hint_configure_tool"
	HintInstallTool     Key = "hint_install_tool"
	HintSetup           Key = "hint_setup"
	HintFixBlock        Key = "hint_fix_block"
	HintDuplicateBlock  Key = "hint_duplicate_block"
	HintListConfigKeys  Key = "hint_list_config_keys"
	HintSeeHelp         Key = "hint_see_help"
	HintCheckPermission Key = "hint_check_permission"
	HintResetConfig     Key = "hint_reset_config"

	ConfigSetDone    Key = "config_set_done"
	ConfigResetDone  Key = "config_reset_done"
	ConfigMovedAside Key = "config_moved_aside"

	InitWritten       Key = "init_written"
	InitUnchanged     Key = "init_unchanged"
	InitClaudeVersion Key = "init_claude_version"
	InitClaudeLegacy  Key = "init_claude_legacy"
	InitLegacyRemoved Key = "init_legacy_removed"

	SetupInstalling  Key = "setup_installing"
	SetupDownloading Key = "setup_downloading"
	SetupInstalled   Key = "setup_installed"
	SetupUpToDate    Key = "setup_up_to_date"
	SetupUsingProxy  Key = "setup_using_proxy"
	SetupPathHint    Key = "setup_path_hint"
	SetupComplete    Key = "setup_complete"

	DoctorHeader Key = "doctor_header"
	DoctorAllOK  Key = "doctor_all_ok"
	DoctorFailed Key = "doctor_failed"

	InfoPaths        Key = "info_paths"
	InfoInstallPath  Key = "info_install_path"
	InfoConfigPath   Key = "info_config_path"
	InfoDataPath     Key = "info_data_path"
	InfoComponents   Key = "info_components"
	InfoInstalled    Key = "info_installed"
	InfoNotInstalled Key = "info_not_installed"
	InfoRunSetup     Key = "info_run_setup"
	InfoUnknown      Key = "info_unknown"

	UpdateChecking              Key = "update_checking"
	UpdateCurrentVersion        Key = "update_current_version"
	UpdateLatestVersion         Key = "update_latest_version"
	UpdateUsingProxy            Key = "update_using_proxy"
	UpdateAlreadyLatest         Key = "update_already_latest"
	UpdateAvailable             Key = "update_available"
	UpdateDownloading           Key = "update_downloading"
	UpdateVerifying             Key = "update_verifying"
	UpdateInstalling            Key = "update_installing"
	UpdateSuccess               Key = "update_success"
	UpdateRulesChecking         Key = "update_rules_checking"
	UpdateRulesCurrent          Key = "update_rules_current"
	UpdateRulesOutdated         Key = "update_rules_outdated"
	UpdateRulesModified         Key = "update_rules_modified"
	UpdateRulesConfirmUpdate    Key = "update_rules_confirm_update"
	UpdateRulesConfirmOverwrite Key = "update_rules_confirm_overwrite"
	UpdateRulesSkipped          Key = "update_rules_skipped"
	UpdateRulesDiffBase         Key = "update_rules_diff_base"
	UpdateRulesDiffCurrent      Key = "update_rules_diff_current"

	UninstallWillRemove Key = "uninstall_will_remove"
	UninstallConfigData Key = "uninstall_config_data"
	UninstallManual     Key = "uninstall_manual"
	UninstallPathEntry  Key = "uninstall_path_entry"
	UninstallRulesFiles Key = "uninstall_rules_files"
	UninstallConfirm    Key = "uninstall_confirm"
	UninstallCancelled  Key = "uninstall_cancelled"
	UninstallRemoving   Key = "uninstall_removing"
	UninstallSuccess    Key = "uninstall_success"
	UninstallDeferred   Key = "uninstall_deferred"
	UninstallNothing    Key = "uninstall_nothing"

	CompletionInstalled Key = "completion_installed"
	CompletionUnchanged Key = "completion_unchanged"
	CompletionBackup    Key = "completion_backup"
	CompletionRestart   Key = "completion_restart"
)

var messages = map[Key]entry{
	ErrMissingRationale: {
		en: "`%s` requires `--what` and `--why`, and they must appear before the subcommand.",
		zh: "`%s` 需要 `--what` 和 `--why`，并且它们必须写在子命令之前。",
	},
	ErrRationaleMisplaced: {
		en: "`%s` was found after the subcommand",
		zh: "`%s` 出现在子命令之后",
	},
	ErrRationaleEmpty: {
		en: "`%s` must not be empty",
		zh: "`%s` 不能为空",
	},
	ErrRationaleAbsent: {
		en: "`%s` is missing",
		zh: "缺少 `%s`",
	},
	ErrUnexpectedRationale: {
		en: "--what/--why are only allowed for run/py/node/pip/npm/npx, not `%s`.",
		zh: "--what/--why 只能用于 run/py/node/pip/npm/npx，不能用于 `%s`。",
	},
	ErrUnknownCommand: {
		en: "unknown command `%s`",
		zh: "未知命令 `%s`",
	},
	ErrFileNotFound: {
		en: "script file not found: %s",
		zh: "脚本文件不存在：%s",
	},
	ErrToolNotFound: {
		en: "%s not found",
		zh: "找不到 %s",
	},
	ErrCorruptBlock: {
		en: "%s: found %q without a matching %q; refusing to guess where the shnote block ends",
		zh: "%s：找到 %q 但没有对应的 %q，无法确定 shnote 区块的结束位置",
	},
	ErrDuplicateBlock: {
		en: "%s: %q appears a second time on line %d; only one shnote block is allowed",
		zh: "%[1]s：第 %[3]d 行再次出现 %[2]q，只允许一个 shnote 区块",
	},
	ErrSpawnFailed: {
		en: "failed to start %s: %v",
		zh: "无法启动 %s：%v",
	},
	ErrChildSignaled: {
		en: "%s terminated by signal %s",
		zh: "%s 被信号 %s 终止",
	},
	ErrScriptSource: {
		en: "`%s` needs exactly one of -c/--code, -f/--file or --stdin",
		zh: "`%s` 需要且只能指定 -c/--code、-f/--file、--stdin 之一",
	},
	ErrEmptyStdin: {
		en: "no script received on stdin",
		zh: "没有从 stdin 读取到脚本",
	},
	ErrRunEmpty: {
		en: "`run` needs a command to execute",
		zh: "`run` 需要要执行的命令",
	},
	ErrUnknownConfigKey: {
		en: "unknown config key: %s",
		zh: "未知的配置项：%s",
	},
	ErrInvalidConfigValue: {
		en: "invalid value %q for %s (allowed: %s)",
		zh: "%[2]s 的值 %[1]q 无效（可选：%[3]s）",
	},
	ErrChecksumMismatch: {
		en: "checksum mismatch for %s: expected %s, got %s",
		zh: "%s 校验失败：期望 %s，实际 %s",
	},
	ErrUnsupportedPlatform: {
		en: "no prebuilt binary for %s",
		zh: "没有适用于 %s 的预编译二进制",
	},
	ErrDevBuild: {
		en: "refusing to replace a development build; pass --force to install the latest release",
		zh: "当前为开发版本，拒绝覆盖；如需安装最新发布版本请加 --force",
	},
	ErrUninstallFailed: {
		en: "%d item(s) could not be removed",
		zh: "%d 项无法删除",
	},

	HintRationale: {
		en: `shnote --what "<what>" --why "<why>" %s ...`,
		zh: `shnote --what "<做什么>" --why "<为什么>" %s ...`,
	},
	HintDropRationale: {
		en: "run `shnote %s` without --what/--why",
		zh: "直接运行 `shnote %s`，不要带 --what/--why",
	},
	HintConfigureTool: {
		en: "point shnote at it: shnote config set %s /path/to/%s",
		zh: "指定路径：shnote config set %s /path/to/%s",
	},
	HintInstallTool: {
		en: "install %s and make sure it is on PATH",
		zh: "安装 %s 并确保它在 PATH 中",
	},
	HintSetup: {
		en: "run `shnote setup` to install pueue and pueued",
		zh: "运行 `shnote setup` 安装 pueue 和 pueued",
	},
	HintDuplicateBlock: {
		en: "delete the extra shnote block by hand, keeping one, then re-run",
		zh: "手动删除多余的 shnote 区块，只保留一个，然后重试",
	},
	HintFixBlock: {
		en: "add the missing end marker or remove the start marker by hand, then re-run",
		zh: "手动补上结束标记或删除开始标记后重试",
	},
	HintListConfigKeys: {
		en: "run `shnote config list` to see valid keys",
		zh: "运行 `shnote config list` 查看可用配置项",
	},
	HintSeeHelp: {
		en: "run `shnote --help` for usage",
		zh: "运行 `shnote --help` 查看用法",
	},
	HintCheckPermission: {
		en: "check that %s is executable",
		zh: "检查 %s 是否可执行",
	},

	HintResetConfig: {
		en: "fix it with `shnote config set <key> <value>` or restore defaults with `shnote config reset`",
		zh: "使用 `shnote config set <key> <value>` 修正，或运行 `shnote config reset` 恢复默认值",
	},

	ConfigSetDone: {
		en: "%s = %s",
		zh: "%s = %s",
	},
	ConfigResetDone: {
		en: "Configuration reset to defaults: %s",
		zh: "配置已重置为默认值：%s",
	},
	ConfigMovedAside: {
		en: "The unreadable config file was saved as %s",
		zh: "无法解析的配置文件已保存为 %s",
	},

	InitWritten: {
		en: "shnote rules written to %s",
		zh: "shnote 规则已写入 %s",
	},
	InitUnchanged: {
		en: "shnote rules already up to date in %s",
		zh: "%s 中的 shnote 规则已是最新",
	},
	InitClaudeVersion: {
		en: "Detected Claude Code %s",
		zh: "检测到 Claude Code %s",
	},
	InitClaudeLegacy: {
		en: "Claude Code >= %s not detected; merging rules into %s",
		zh: "未检测到 Claude Code >= %s，规则将合并到 %s",
	},
	InitLegacyRemoved: {
		en: "Removed old shnote rules from %s",
		zh: "已从 %s 移除旧的 shnote 规则",
	},

	SetupInstalling: {
		en: "Installing pueue v%s into %s",
		zh: "正在安装 pueue v%s 到 %s",
	},
	SetupDownloading: {
		en: "Downloading %s",
		zh: "正在下载 %s",
	},
	SetupInstalled: {
		en: "  ✓ %s -> %s",
		zh: "  ✓ %s -> %s",
	},
	SetupUpToDate: {
		en: "  ✓ %s already installed (%s)",
		zh: "  ✓ %s 已安装（%s）",
	},
	SetupUsingProxy: {
		en: "Using GitHub proxy: %s",
		zh: "使用 GitHub 代理：%s",
	},
	SetupPathHint: {
		en: "Add the shnote bin directory to your PATH:",
		zh: "请将 shnote 的 bin 目录加入 PATH：",
	},
	SetupComplete: {
		en: "Setup complete.",
		zh: "初始化完成。",
	},

	DoctorHeader: {
		en: "Checking environment:",
		zh: "检查运行环境：",
	},
	DoctorAllOK: {
		en: "All checks passed.",
		zh: "所有检查均已通过。",
	},
	DoctorFailed: {
		en: "%d check(s) failed.",
		zh: "%d 项检查未通过。",
	},

	InfoPaths:        {en: "Paths", zh: "路径"},
	InfoInstallPath:  {en: "Install path", zh: "安装路径"},
	InfoConfigPath:   {en: "Config file", zh: "配置文件"},
	InfoDataPath:     {en: "Data directory", zh: "数据目录"},
	InfoComponents:   {en: "Components", zh: "组件"},
	InfoInstalled:    {en: "installed", zh: "已安装"},
	InfoNotInstalled: {en: "not installed", zh: "未安装"},
	InfoRunSetup:     {en: "(run `shnote setup`)", zh: "（运行 `shnote setup`）"},
	InfoUnknown:      {en: "unknown", zh: "未知"},

	UpdateChecking:       {en: "Checking for updates...", zh: "正在检查更新..."},
	UpdateCurrentVersion: {en: "Current version", zh: "当前版本"},
	UpdateLatestVersion:  {en: "Latest version", zh: "最新版本"},
	UpdateUsingProxy:     {en: "Using GitHub proxy", zh: "使用 GitHub 代理"},
	UpdateAlreadyLatest:  {en: "Already up to date.", zh: "已是最新版本。"},
	UpdateAvailable: {
		en: "Update available: %s (run `shnote update` to install)",
		zh: "有可用更新：%s（运行 `shnote update` 安装）",
	},
	UpdateDownloading: {en: "Downloading %s...", zh: "正在下载 %s..."},
	UpdateVerifying:   {en: "Verifying checksum...", zh: "正在校验..."},
	UpdateInstalling:  {en: "Installing...", zh: "正在安装..."},
	UpdateSuccess:     {en: "Updated to %s.", zh: "已更新到 %s。"},
	UpdateRulesChecking: {
		en: "Checking installed shnote rules...",
		zh: "正在检查已安装的 shnote 规则...",
	},
	UpdateRulesCurrent: {
		en: "%s is up to date.",
		zh: "%s 已是最新。",
	},
	UpdateRulesOutdated: {
		en: "%s contains rules from an older shnote.",
		zh: "%s 中的规则来自旧版本 shnote。",
	},
	UpdateRulesModified: {
		en: "%s contains locally modified rules:",
		zh: "%s 中的规则已被手动修改：",
	},
	UpdateRulesConfirmUpdate:    {en: "Update them now?", zh: "现在更新吗？"},
	UpdateRulesConfirmOverwrite: {en: "Overwrite your changes?", zh: "覆盖你的修改吗？"},
	UpdateRulesSkipped:          {en: "Skipped.", zh: "已跳过。"},
	UpdateRulesDiffBase:         {en: "shnote template", zh: "shnote 模板"},
	UpdateRulesDiffCurrent:      {en: "installed", zh: "已安装"},

	UninstallWillRemove: {en: "The following will be removed:", zh: "将删除以下内容："},
	UninstallConfigData: {en: "config and data", zh: "配置和数据"},
	UninstallManual:     {en: "Remove these by hand afterwards:", zh: "之后请手动清理："},
	UninstallPathEntry: {
		en: "the shnote bin directory entry in your PATH",
		zh: "PATH 中的 shnote bin 目录",
	},
	UninstallRulesFiles: {en: "shnote rules in", zh: "以下文件中的 shnote 规则"},
	UninstallConfirm:    {en: "Proceed?", zh: "确认继续？"},
	UninstallCancelled:  {en: "Cancelled.", zh: "已取消。"},
	UninstallRemoving:   {en: "Removing %s...", zh: "正在删除 %s..."},
	UninstallSuccess:    {en: "shnote has been uninstalled.", zh: "shnote 已卸载。"},
	UninstallDeferred: {
		en: "%s is in use and will be deleted after the next reboot",
		zh: "%s 正在使用中，将在下次重启后删除",
	},
	UninstallNothing: {en: "Nothing to remove.", zh: "没有需要删除的内容。"},

	CompletionInstalled: {en: "Completions installed in %s", zh: "补全脚本已安装到 %s"},
	CompletionUnchanged: {en: "Completions already installed in %s", zh: "%s 中已安装补全脚本"},
	CompletionBackup:    {en: "Backup saved to %s", zh: "已备份到 %s"},
	CompletionRestart: {
		en: "Restart your shell or open a new terminal to use them.",
		zh: "重新启动 shell 或打开新终端后生效。",
	},
}
